package models

import (
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// Booking records an e-Snan ceremony purchase. SnanPhotoURL stays nil until
// the priest uploads the ceremony photo after completion.
type Booking struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID            uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	City              enums.HolyCity      `gorm:"column:city;type:text;not null"`
	CityName          string              `gorm:"column:city_name;not null"`
	PhotoURL          string              `gorm:"column:photo_url;not null"`
	AddPhoto          bool                `gorm:"column:add_photo;not null;default:false"`
	AddHolyWater      bool                `gorm:"column:add_holy_water;not null;default:false"`
	TotalAmountRupees int                 `gorm:"column:total_amount_rupees;not null"`
	Status            enums.BookingStatus `gorm:"column:status;type:text;not null;default:'active'"`
	SnanPhotoURL      *string             `gorm:"column:snan_photo_url"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
