package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/RitikRK96/esnan-digital/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateProfileRequest carries the editable profile fields. Absent fields
// leave the stored value untouched.
type UpdateProfileRequest struct {
	Name     *string         `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string         `json:"phone,omitempty" validate:"omitempty,indianphone"`
	WhatsApp *string         `json:"whatsapp,omitempty" validate:"omitempty,indianphone"`
	Address  *AddressRequest `json:"address,omitempty"`
}

// AddressRequest is the postal block of a profile update.
type AddressRequest struct {
	Line    string `json:"address" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Country string `json:"country" validate:"required,max=100"`
	Pincode string `json:"pincode" validate:"required,pincode"`
}

// Service exposes profile reads and updates.
type Service interface {
	Profile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error)
}

type profileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) (*models.User, error)
}

type service struct {
	repo profileRepository
}

// NewService returns a profile service over the provided repository.
func NewService(repo profileRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{repo: repo}, nil
}

// Profile loads the authenticated user's profile.
func (s *service) Profile(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find user")
	}
	return FromModel(user), nil
}

// UpdateProfile applies the provided fields and returns the updated profile.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error) {
	dto := UpdateProfileDTO{
		Phone:    req.Phone,
		WhatsApp: req.WhatsApp,
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		dto.Name = &trimmed
	}
	if req.Address != nil {
		dto.Address = &types.Address{
			Line:    strings.TrimSpace(req.Address.Line),
			City:    strings.TrimSpace(req.Address.City),
			State:   strings.TrimSpace(req.Address.State),
			Country: strings.TrimSpace(req.Address.Country),
			Pincode: strings.TrimSpace(req.Address.Pincode),
		}
	}

	user, err := s.repo.UpdateProfile(ctx, userID, dto)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
	}
	return FromModel(user), nil
}
