package products

import (
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// ProductDTO is a catalog entry as served to clients.
type ProductDTO struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description *string               `json:"description,omitempty"`
	Category    enums.ProductCategory `json:"category"`
	PriceRupees int                   `json:"price_rupees"`
	ImageURL    string                `json:"image_url"`
	CreatedAt   time.Time             `json:"created_at"`
}

// CatalogDTO groups the catalog by category, in the order the storefront
// renders its tabs.
type CatalogDTO struct {
	Categories []CategoryDTO `json:"categories"`
	Total      int           `json:"total"`
}

// CategoryDTO is one storefront tab.
type CategoryDTO struct {
	Category enums.ProductCategory `json:"category"`
	Products []ProductDTO          `json:"products"`
}

// FromModel converts a persisted product into its API shape.
func FromModel(product models.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		PriceRupees: product.PriceRupees,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}
