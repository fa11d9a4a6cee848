package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/interviewdesk/backend/internal/models"
)

type MessageRepository interface {
	Insert(ctx context.Context, msg *models.Message) error
	ListByInterview(ctx context.Context, interviewID string) ([]models.Message, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Insert(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListByInterview returns messages oldest first. The id tiebreak keeps
// insertion order stable when two rows share a timestamp.
func (r *messageRepo) ListByInterview(ctx context.Context, interviewID string) ([]models.Message, error) {
	rows := make([]models.Message, 0)
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
