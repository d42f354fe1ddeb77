package contact

import (
	"context"
	"testing"
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/google/uuid"
)

type fakeMessageStore struct {
	stored []*models.ContactMessage
	err    error
}

func (f *fakeMessageStore) Create(ctx context.Context, message *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	message.ID = uuid.New()
	message.CreatedAt = time.Now().UTC()
	f.stored = append(f.stored, message)
	return nil
}

func TestSubmitNormalizesFields(t *testing.T) {
	store := &fakeMessageStore{}
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "  Ritik Kumar  ",
		Email:   " Devotee@Example.COM ",
		Subject: "Prasadam delivery",
		Message: "When will my prasadam box arrive in Lucknow?",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if dto.ID == uuid.Nil {
		t.Fatal("expected an id")
	}
	if len(store.stored) != 1 {
		t.Fatalf("expected one stored message, got %d", len(store.stored))
	}
	got := store.stored[0]
	if got.Name != "Ritik Kumar" {
		t.Fatalf("unexpected name %q", got.Name)
	}
	if got.Email != "devotee@example.com" {
		t.Fatalf("unexpected email %q", got.Email)
	}
}
