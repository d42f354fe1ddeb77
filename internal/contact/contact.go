package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitRequest is a contact-form submission. Unauthenticated, so everything
// identifying the sender comes from the body.
type SubmitRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,indianphone"`
	Subject string  `json:"subject" validate:"required,min=3,max=200"`
	Message string  `json:"message" validate:"required,min=10,max=2000"`
}

// MessageDTO acknowledges a stored submission.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Service stores contact-form submissions.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*MessageDTO, error)
}

type messageStore interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

// Repository persists contact messages.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contact repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a contact message.
func (r *Repository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

type service struct {
	store messageStore
}

// NewService returns a contact service over the provided store.
func NewService(store messageStore) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("message store is required")
	}
	return &service{store: store}, nil
}

// Submit normalizes and stores the submission.
func (s *service) Submit(ctx context.Context, req SubmitRequest) (*MessageDTO, error) {
	message := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.store.Create(ctx, message); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store contact message")
	}
	return &MessageDTO{ID: message.ID, CreatedAt: message.CreatedAt}, nil
}
