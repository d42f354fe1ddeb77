package bookings

import (
	"context"
	"fmt"

	"github.com/RitikRK96/esnan-digital/pkg/cache"
	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/RitikRK96/esnan-digital/pkg/logger"
	"github.com/google/uuid"
)

// Service owns e-Snan ceremony bookings. History reads go through the
// snapshot cache; booking a ceremony invalidates the history snapshot the
// same way cart mutations invalidate the cart snapshot.
type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error)
	History(ctx context.Context, userID uuid.UUID) (*HistoryDTO, error)
	ListCities(ctx context.Context) []CityDTO
}

type bookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
}

// ServiceParams bundles the dependencies required to build a bookings service.
type ServiceParams struct {
	Repo      bookingRepository
	Snapshots cache.Store
	Logger    *logger.Logger
}

type service struct {
	repo      bookingRepository
	snapshots cache.Store
	logg      *logger.Logger
}

// NewService validates dependencies and returns a bookings service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("booking repository is required")
	}
	if params.Snapshots == nil {
		return nil, fmt.Errorf("snapshot cache is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		repo:      params.Repo,
		snapshots: params.Snapshots,
		logg:      params.Logger,
	}, nil
}

// CreateBooking prices and persists a ceremony booking, then drops the
// history snapshot so the next read includes it.
func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	city, err := enums.ParseHolyCity(req.CityID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown city")
	}
	info, total, err := priceBooking(city, req.AddPhoto, req.AddHolyWater)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:            userID,
		City:              city,
		CityName:          info.displayName,
		PhotoURL:          req.PhotoURL,
		AddPhoto:          req.AddPhoto,
		AddHolyWater:      req.AddHolyWater,
		TotalAmountRupees: total,
		Status:            enums.BookingStatusActive,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create booking")
	}

	if err := s.snapshots.Invalidate(ctx, cache.SnapshotSnanHistory, userID.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "invalidate history snapshot")
	}

	dto := FromModel(*booking)
	return &dto, nil
}

// History serves the cached ceremony history when present, otherwise loads
// from the database and repopulates the cache.
func (s *service) History(ctx context.Context, userID uuid.UUID) (*HistoryDTO, error) {
	var cached HistoryDTO
	hit, err := s.snapshots.Get(ctx, cache.SnapshotSnanHistory, userID.String(), &cached)
	if err != nil {
		s.logg.Warn(ctx, "bookings.snapshot.read_failed")
	}
	if hit {
		return &cached, nil
	}

	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list bookings")
	}
	history := &HistoryDTO{Bookings: make([]BookingDTO, 0, len(bookings)), Total: len(bookings)}
	for _, booking := range bookings {
		history.Bookings = append(history.Bookings, FromModel(booking))
	}

	if err := s.snapshots.Put(ctx, cache.SnapshotSnanHistory, userID.String(), history); err != nil {
		s.logg.Warn(ctx, "bookings.snapshot.write_failed")
	}
	return history, nil
}

// ListCities returns the bookable city catalog.
func (s *service) ListCities(ctx context.Context) []CityDTO {
	return Cities()
}
