package models

import (
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// CartItem is one line of a user's cart. Product attributes are snapshotted so
// the cart renders without joining the catalog; identity within a cart is the
// product id, enforced by the (user_id, product_id) unique index.
type CartItem struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID             `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID   uuid.UUID             `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Name        string                `gorm:"column:name;not null"`
	PriceRupees int                   `gorm:"column:price_rupees;not null"`
	Quantity    int                   `gorm:"column:quantity;not null"`
	ImageURL    string                `gorm:"column:image_url;not null"`
	Category    enums.ProductCategory `gorm:"column:category;type:text;not null"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
