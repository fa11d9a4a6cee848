package services

import (
	"context"
	"errors"
	"time"

	"github.com/interviewdesk/backend/internal/models"
	pgrepo "github.com/interviewdesk/backend/internal/repositories/postgres"
	"github.com/interviewdesk/backend/internal/utils"
)

// maxCodeAttempts bounds the candidate-code retry loop so a pathological
// store cannot spin it forever.
const maxCodeAttempts = 20

type CreateInterviewInput struct {
	CandidateName string
	Role          string
	Level         *string
	Format        *string
	Language      *string
	Notes         *string
}

type UpdateInterviewInput struct {
	Status   *string
	Notes    *string
	Finished *bool
}

type InterviewService interface {
	Create(ctx context.Context, in CreateInterviewInput) (*models.Interview, error)
	List(ctx context.Context) ([]models.Interview, error)
	Get(ctx context.Context, id string, code *string) (*models.Interview, error)
	Update(ctx context.Context, id string, in UpdateInterviewInput) (*models.Interview, error)
}

type interviewService struct {
	interviews pgrepo.InterviewRepository
}

func NewInterviewService(interviews pgrepo.InterviewRepository) InterviewService {
	return &interviewService{interviews: interviews}
}

// Create inserts a new interview with a fresh id and a short candidate code.
// The code is unique across all interviews; when the store rejects a
// collision the insert is retried with a new code, up to maxCodeAttempts.
func (s *interviewService) Create(ctx context.Context, in CreateInterviewInput) (*models.Interview, error) {
	const op = "InterviewService.Create"

	if in.CandidateName == "" || in.Role == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_name and role are required", nil)
	}

	id := utils.NewInterviewID()

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		iv := &models.Interview{
			ID:            id,
			CandidateName: in.CandidateName,
			Role:          in.Role,
			Level:         in.Level,
			Format:        in.Format,
			Language:      in.Language,
			Notes:         in.Notes,
			CandidateCode: utils.NewCandidateCode(),
		}

		err := s.interviews.Insert(ctx, iv)
		if err == nil {
			return iv, nil
		}
		if errors.Is(err, utils.ErrConflict) {
			// taken candidate_code, roll a new one
			continue
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create interview", err)
	}

	return nil, utils.E(utils.CodeInternal, op, "could not allocate unique candidate code", nil)
}

func (s *interviewService) List(ctx context.Context) ([]models.Interview, error) {
	const op = "InterviewService.List"

	rows, err := s.interviews.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return rows, nil
}

// Get fetches one interview. When code is supplied and the stored
// candidate_code is non-empty, the two must match; this lets the same
// operation serve the recruiter (no code) and the candidate (code required).
func (s *interviewService) Get(ctx context.Context, id string, code *string) (*models.Interview, error) {
	const op = "InterviewService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeUnprocessable, op, "id is required", nil)
	}

	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interview", err)
	}

	if code != nil && iv.CandidateCode != "" && iv.CandidateCode != *code {
		return nil, utils.E(utils.CodeForbidden, op, "invalid candidate code", nil)
	}

	return iv, nil
}

// Update applies a partial update built from the fields the caller actually
// sent. A finished=true flag stamps finished_at with the current time.
func (s *interviewService) Update(ctx context.Context, id string, in UpdateInterviewInput) (*models.Interview, error) {
	const op = "InterviewService.Update"

	fields := map[string]any{}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.Finished != nil && *in.Finished {
		fields["finished_at"] = time.Now().UTC()
	}

	if len(fields) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no fields to update", nil)
	}

	iv, err := s.interviews.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update interview", err)
	}
	return iv, nil
}
