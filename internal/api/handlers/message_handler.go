package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interviewdesk/backend/internal/services"
	"github.com/interviewdesk/backend/internal/utils"
)

type MessageHandler struct {
	svc services.MessageService
}

func NewMessageHandler(svc services.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

type CreateMessageRequest struct {
	InterviewID string `json:"interview_id" binding:"required"`
	Sender      string `json:"sender" binding:"required"`
	Text        string `json:"text" binding:"required"`
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeUnprocessable, "MessageHandler.Create", "invalid request body", err))
		return
	}

	msg, err := h.svc.Create(c.Request.Context(), req.InterviewID, req.Sender, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) List(c *gin.Context) {
	interviewID := c.Query("interviewId")
	if interviewID == "" {
		writeError(c, utils.E(utils.CodeUnprocessable, "MessageHandler.List", "interviewId query parameter is required", nil))
		return
	}

	rows, err := h.svc.ListByInterview(c.Request.Context(), interviewID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
