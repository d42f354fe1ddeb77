package models

import (
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// Order is an immutable snapshot of a cart at checkout.
type Order struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Status      enums.OrderStatus `gorm:"column:status;type:text;not null;default:'placed'"`
	TotalRupees int               `gorm:"column:total_rupees;not null"`
	Items       []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem carries the cart line data frozen at checkout time.
type OrderItem struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID         uuid.UUID             `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID       uuid.UUID             `gorm:"column:product_id;type:uuid;not null"`
	Name            string                `gorm:"column:name;not null"`
	PriceRupees     int                   `gorm:"column:price_rupees;not null"`
	Quantity        int                   `gorm:"column:quantity;not null"`
	ImageURL        string                `gorm:"column:image_url;not null"`
	Category        enums.ProductCategory `gorm:"column:category;type:text;not null"`
	LineTotalRupees int                   `gorm:"column:line_total_rupees;not null"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
}
