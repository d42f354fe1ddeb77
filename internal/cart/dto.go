package cart

import (
	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// ItemDTO is one cart line as served to clients. Product attributes are the
// snapshot captured at add time, not a live join against the catalog.
type ItemDTO struct {
	ProductID       uuid.UUID             `json:"product_id"`
	Name            string                `json:"name"`
	PriceRupees     int                   `json:"price_rupees"`
	Quantity        int                   `json:"quantity"`
	ImageURL        string                `json:"image_url"`
	Category        enums.ProductCategory `json:"category"`
	LineTotalRupees int                   `json:"line_total_rupees"`
}

// CartDTO is the full cart payload, totals included so clients never have to
// recompute them.
type CartDTO struct {
	Items            []ItemDTO `json:"items"`
	TotalItems       int       `json:"total_items"`
	TotalPriceRupees int       `json:"total_price_rupees"`
}

// AddItemRequest adds one unit of a product to the cart.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest sets the absolute quantity for a cart line. Zero (or
// below) removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func itemFromModel(item models.CartItem) ItemDTO {
	return ItemDTO{
		ProductID:       item.ProductID,
		Name:            item.Name,
		PriceRupees:     item.PriceRupees,
		Quantity:        item.Quantity,
		ImageURL:        item.ImageURL,
		Category:        item.Category,
		LineTotalRupees: item.PriceRupees * item.Quantity,
	}
}

func cartFromModels(items []models.CartItem) *CartDTO {
	dto := &CartDTO{Items: make([]ItemDTO, 0, len(items))}
	for _, item := range items {
		line := itemFromModel(item)
		dto.Items = append(dto.Items, line)
		dto.TotalItems += line.Quantity
		dto.TotalPriceRupees += line.LineTotalRupees
	}
	return dto
}
