package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interviewdesk/backend/internal/services"
	"github.com/interviewdesk/backend/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type CreateInterviewRequest struct {
	CandidateName string  `json:"candidate_name" binding:"required"`
	Role          string  `json:"role" binding:"required"`
	Level         *string `json:"level"`
	Format        *string `json:"format"`
	Language      *string `json:"language"`
	Notes         *string `json:"notes"`
}

func (h *InterviewHandler) Create(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeUnprocessable, "InterviewHandler.Create", "invalid request body", err))
		return
	}

	iv, err := h.svc.Create(c.Request.Context(), services.CreateInterviewInput{
		CandidateName: req.CandidateName,
		Role:          req.Role,
		Level:         req.Level,
		Format:        req.Format,
		Language:      req.Language,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, iv)
}

func (h *InterviewHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get serves both the recruiter view (no code) and the candidate view
// (code checked against the stored candidate_code).
func (h *InterviewHandler) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		writeError(c, utils.E(utils.CodeUnprocessable, "InterviewHandler.Get", "id query parameter is required", nil))
		return
	}

	var code *string
	if v, ok := c.GetQuery("code"); ok {
		code = &v
	}

	iv, err := h.svc.Get(c.Request.Context(), id, code)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, iv)
}

type UpdateInterviewRequest struct {
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
	Finished *bool   `json:"finished"`
}

func (h *InterviewHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeUnprocessable, "InterviewHandler.Update", "invalid request body", err))
		return
	}

	iv, err := h.svc.Update(c.Request.Context(), id, services.UpdateInterviewInput{
		Status:   req.Status,
		Notes:    req.Notes,
		Finished: req.Finished,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, iv)
}
