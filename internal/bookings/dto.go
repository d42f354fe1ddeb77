package bookings

import (
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// CreateBookingRequest submits an e-Snan ceremony booking. The total is
// computed server-side from the city and add-ons.
type CreateBookingRequest struct {
	CityID       string `json:"city_id" validate:"required"`
	PhotoURL     string `json:"photo_url" validate:"required,url"`
	AddPhoto     bool   `json:"add_photo"`
	AddHolyWater bool   `json:"add_holy_water"`
}

// BookingDTO is a booking as served to clients.
type BookingDTO struct {
	ID                uuid.UUID           `json:"id"`
	City              enums.HolyCity      `json:"city"`
	CityName          string              `json:"city_name"`
	PhotoURL          string              `json:"photo_url"`
	AddPhoto          bool                `json:"add_photo"`
	AddHolyWater      bool                `json:"add_holy_water"`
	TotalAmountRupees int                 `json:"total_amount_rupees"`
	Status            enums.BookingStatus `json:"status"`
	SnanPhotoURL      *string             `json:"snan_photo_url,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// HistoryDTO is the user's full ceremony history, newest first.
type HistoryDTO struct {
	Bookings []BookingDTO `json:"bookings"`
	Total    int          `json:"total"`
}

// FromModel converts a persisted booking into its API shape.
func FromModel(booking models.Booking) BookingDTO {
	return BookingDTO{
		ID:                booking.ID,
		City:              booking.City,
		CityName:          booking.CityName,
		PhotoURL:          booking.PhotoURL,
		AddPhoto:          booking.AddPhoto,
		AddHolyWater:      booking.AddHolyWater,
		TotalAmountRupees: booking.TotalAmountRupees,
		Status:            booking.Status,
		SnanPhotoURL:      booking.SnanPhotoURL,
		CreatedAt:         booking.CreatedAt,
	}
}
