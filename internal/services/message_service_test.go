package services

import (
	"context"
	"testing"
	"time"

	"github.com/interviewdesk/backend/internal/models"
	pgrepo "github.com/interviewdesk/backend/internal/repositories/postgres"
	"github.com/interviewdesk/backend/internal/utils"
)

func TestCreateAndListMessages(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(pgrepo.NewMessageRepo(db))

	m1, err := svc.Create(context.Background(), "iv-1", "candidate", "hello")
	if err != nil {
		t.Fatalf("create m1: %v", err)
	}
	if m1.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
	if m1.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	m2, err := svc.Create(context.Background(), "iv-1", "system", "hi there")
	if err != nil {
		t.Fatalf("create m2: %v", err)
	}

	rows, err := svc.ListByInterview(context.Background(), "iv-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(rows))
	}
	if rows[0].ID != m1.ID || rows[1].ID != m2.ID {
		t.Fatalf("messages out of insertion order: [%d %d]", rows[0].ID, rows[1].ID)
	}
	if rows[1].CreatedAt.Before(rows[0].CreatedAt) {
		t.Fatalf("created_at order violated")
	}
}

func TestListMessagesScopedToInterview(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(pgrepo.NewMessageRepo(db))

	if _, err := svc.Create(context.Background(), "iv-a", "candidate", "only for a"); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := svc.ListByInterview(context.Background(), "iv-unused")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty list for unused interview id, got %d", len(rows))
	}
}

func TestListMessagesOrderWithEqualTimestamps(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(pgrepo.NewMessageRepo(db))

	ts := time.Now().UTC().Truncate(time.Second)
	for _, text := range []string{"one", "two", "three"} {
		if err := db.Create(&models.Message{
			InterviewID: "iv-tie",
			Sender:      "candidate",
			Text:        text,
			CreatedAt:   ts,
		}).Error; err != nil {
			t.Fatalf("seed %q: %v", text, err)
		}
	}

	rows, err := svc.ListByInterview(context.Background(), "iv-tie")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []string{"one", "two", "three"} {
		if rows[i].Text != want {
			t.Fatalf("row %d: got %q, want %q", i, rows[i].Text, want)
		}
	}
}

func TestCreateMessageRequiredFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(pgrepo.NewMessageRepo(db))

	_, err := svc.Create(context.Background(), "", "candidate", "hello")
	if !utils.IsCode(err, utils.CodeUnprocessable) {
		t.Fatalf("expected UNPROCESSABLE, got %v", err)
	}

	_, err = svc.ListByInterview(context.Background(), "")
	if !utils.IsCode(err, utils.CodeUnprocessable) {
		t.Fatalf("expected UNPROCESSABLE for empty interview id, got %v", err)
	}
}
