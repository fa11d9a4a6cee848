package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/interviewdesk/backend/internal/api/handlers"
)

type Deps struct {
	Interview *handlers.InterviewHandler
	Message   *handlers.MessageHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "backend": "go"})
	})

	api.GET("/interviews", d.Interview.List)
	api.POST("/interviews", d.Interview.Create)
	// alias kept for older frontend builds
	api.POST("/interview", d.Interview.Create)
	api.GET("/interview", d.Interview.Get)
	api.PATCH("/interviews/:id", d.Interview.Update)

	api.GET("/messages", d.Message.List)
	api.POST("/messages", d.Message.Create)
}
