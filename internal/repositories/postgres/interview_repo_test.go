package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/interviewdesk/backend/internal/models"
	"github.com/interviewdesk/backend/internal/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Interview{}, &models.Message{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestInsertDuplicateCodeIsConflict(t *testing.T) {
	repo := NewInterviewRepo(openTestDB(t))

	first := &models.Interview{
		ID:            "iv-1",
		CandidateName: "Alice",
		Role:          "Dev",
		CandidateCode: "AAAAAA",
	}
	if err := repo.Insert(context.Background(), first); err != nil {
		t.Fatalf("insert: %v", err)
	}

	dup := &models.Interview{
		ID:            "iv-2",
		CandidateName: "Bob",
		Role:          "Dev",
		CandidateCode: "AAAAAA",
	}
	err := repo.Insert(context.Background(), dup)
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// the failed insert must leave no partial row behind
	rows, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after rejected insert, got %d", len(rows))
	}
}

func TestUpdateFieldsUnknownID(t *testing.T) {
	repo := NewInterviewRepo(openTestDB(t))

	_, err := repo.UpdateFields(context.Background(), "missing", map[string]any{"status": "done"})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFieldsReturnsStoredRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewInterviewRepo(db)

	iv := &models.Interview{
		ID:            "iv-upd",
		CandidateName: "Carol",
		Role:          "Dev",
		CandidateCode: "BBBBBB",
	}
	if err := repo.Insert(context.Background(), iv); err != nil {
		t.Fatalf("insert: %v", err)
	}

	now := time.Now().UTC()
	got, err := repo.UpdateFields(context.Background(), iv.ID, map[string]any{
		"status":      "finished",
		"finished_at": now,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status == nil || *got.Status != "finished" {
		t.Fatalf("status not stored: %+v", got.Status)
	}
	if got.FinishedAt == nil {
		t.Fatalf("finished_at not stored")
	}
	if got.CandidateName != "Carol" {
		t.Fatalf("unrelated column changed: %q", got.CandidateName)
	}
}
