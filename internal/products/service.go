package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryOrder fixes the tab order the storefront renders.
var categoryOrder = []enums.ProductCategory{
	enums.ProductCategoryHolyWater,
	enums.ProductCategoryPrasadam,
	enums.ProductCategoryCombos,
	enums.ProductCategoryPhotography,
}

// Service serves the product catalog.
type Service interface {
	Catalog(ctx context.Context) (*CatalogDTO, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
}

type catalogRepository interface {
	ListActive(ctx context.Context) ([]models.Product, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo catalogRepository
}

// NewService returns a catalog service over the provided repository.
func NewService(repo catalogRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo}, nil
}

// Catalog returns all active products grouped by category. Categories with no
// products are omitted.
func (s *service) Catalog(ctx context.Context) (*CatalogDTO, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	grouped := make(map[enums.ProductCategory][]ProductDTO, len(categoryOrder))
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], FromModel(item))
	}

	catalog := &CatalogDTO{Categories: make([]CategoryDTO, 0, len(categoryOrder)), Total: len(items)}
	for _, category := range categoryOrder {
		products, ok := grouped[category]
		if !ok {
			continue
		}
		catalog.Categories = append(catalog.Categories, CategoryDTO{
			Category: category,
			Products: products,
		})
	}
	return catalog, nil
}

// GetProduct returns a single active product.
func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find product")
	}
	dto := FromModel(*product)
	return &dto, nil
}
