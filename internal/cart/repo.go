package cart

import (
	"context"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes cart persistence operations. A cart is the set of
// cart_items rows for one user; line identity is the (user_id, product_id)
// unique index.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the user's cart lines in insertion order.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddOne inserts a line for the product with quantity 1, or bumps the
// existing line's quantity by 1. Repeated adds of the same product therefore
// collapse into a single line.
func (r *Repository) AddOne(ctx context.Context, userID uuid.UUID, product *models.Product) error {
	item := models.CartItem{
		UserID:      userID,
		ProductID:   product.ID,
		Name:        product.Name,
		PriceRupees: product.PriceRupees,
		Quantity:    1,
		ImageURL:    product.ImageURL,
		Category:    product.Category,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + 1"),
			}),
		}).
		Create(&item).Error
}

// SetQuantity writes an absolute quantity for the line. It reports whether a
// line was actually updated so callers can distinguish a missing product.
func (r *Repository) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Remove deletes the line for the given product. Removing a product that is
// not in the cart is a no-op.
func (r *Repository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// Clear deletes every line in the user's cart.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
