package models

import (
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// Product is a catalog entry. Prices are whole rupees.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string                `gorm:"column:name;not null"`
	Description *string               `gorm:"column:description"`
	Category    enums.ProductCategory `gorm:"column:category;type:text;not null"`
	PriceRupees int                   `gorm:"column:price_rupees;not null"`
	ImageURL    string                `gorm:"column:image_url;not null"`
	IsActive    bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
