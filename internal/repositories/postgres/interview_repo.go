package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/interviewdesk/backend/internal/models"
	"github.com/interviewdesk/backend/internal/utils"
)

type InterviewRepository interface {
	Insert(ctx context.Context, iv *models.Interview) error
	List(ctx context.Context) ([]models.Interview, error)
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Interview, error)
}

type interviewRepo struct {
	db *gorm.DB
}

func NewInterviewRepo(db *gorm.DB) InterviewRepository {
	return &interviewRepo{db: db}
}

// Insert returns utils.ErrConflict when the unique index on candidate_code
// rejects the row, so the caller can re-roll the code and try again.
func (r *interviewRepo) Insert(ctx context.Context, iv *models.Interview) error {
	err := r.db.WithContext(ctx).Create(iv).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	return err
}

func (r *interviewRepo) List(ctx context.Context) ([]models.Interview, error) {
	// non-nil so an empty result serializes as [] rather than null
	rows := make([]models.Interview, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	var iv models.Interview
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&iv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// UpdateFields applies the given column values to one row and returns the row
// as stored afterwards. The update and the re-read share a transaction; when
// no row matches the id the transaction is rolled back and utils.ErrNotFound
// is returned.
func (r *interviewRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Interview, error) {
	var iv models.Interview
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Interview{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrNotFound
		}
		return tx.Where("id = ?", id).Take(&iv).Error
	})
	if err != nil {
		return nil, err
	}
	return &iv, nil
}
