package services

import (
	"context"

	"github.com/interviewdesk/backend/internal/models"
	pgrepo "github.com/interviewdesk/backend/internal/repositories/postgres"
	"github.com/interviewdesk/backend/internal/utils"
)

type MessageService interface {
	Create(ctx context.Context, interviewID, sender, text string) (*models.Message, error)
	ListByInterview(ctx context.Context, interviewID string) ([]models.Message, error)
}

type messageService struct {
	messages pgrepo.MessageRepository
}

func NewMessageService(messages pgrepo.MessageRepository) MessageService {
	return &messageService{messages: messages}
}

// Create appends one message. The interview id is not checked against the
// interviews table; a dangling id simply yields an empty list later.
func (s *messageService) Create(ctx context.Context, interviewID, sender, text string) (*models.Message, error) {
	const op = "MessageService.Create"

	if interviewID == "" || sender == "" || text == "" {
		return nil, utils.E(utils.CodeUnprocessable, op, "interview_id, sender, and text are required", nil)
	}

	msg := &models.Message{
		InterviewID: interviewID,
		Sender:      sender,
		Text:        text,
	}
	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to insert message", err)
	}
	return msg, nil
}

func (s *messageService) ListByInterview(ctx context.Context, interviewID string) ([]models.Message, error) {
	const op = "MessageService.ListByInterview"

	if interviewID == "" {
		return nil, utils.E(utils.CodeUnprocessable, op, "interviewId is required", nil)
	}

	rows, err := s.messages.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list messages", err)
	}
	return rows, nil
}
