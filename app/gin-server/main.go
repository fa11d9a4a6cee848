package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/interviewdesk/backend/config"
	"github.com/interviewdesk/backend/internal/api/handlers"
	"github.com/interviewdesk/backend/internal/api/middleware"
	"github.com/interviewdesk/backend/internal/api/routes"
	"github.com/interviewdesk/backend/internal/logger"
	pgrepo "github.com/interviewdesk/backend/internal/repositories/postgres"
	"github.com/interviewdesk/backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	fmt.Println("PostgreSQL connected")

	db := config.PostgresDB

	interviewSvc := services.NewInterviewService(pgrepo.NewInterviewRepo(db))
	messageSvc := services.NewMessageService(pgrepo.NewMessageRepo(db))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	// wide open on purpose: the service sits behind a trusted internal edge
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Interview: handlers.NewInterviewHandler(interviewSvc),
		Message:   handlers.NewMessageHandler(messageSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
