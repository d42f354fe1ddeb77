package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/RitikRK96/esnan-digital/pkg/cache"
	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/RitikRK96/esnan-digital/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the authoritative cart for a user. Reads go through the snapshot
// cache; every mutation hits the database and invalidates the snapshot so the
// next read converges on server state.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
}

type cartRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	AddOne(ctx context.Context, userID uuid.UUID, product *models.Product) error
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (bool, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type productFinder interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Repo      cartRepository
	Products  productFinder
	Snapshots cache.Store
	Logger    *logger.Logger
}

type service struct {
	repo      cartRepository
	products  productFinder
	snapshots cache.Store
	logg      *logger.Logger
}

// NewService validates dependencies and returns a cart service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	if params.Snapshots == nil {
		return nil, fmt.Errorf("snapshot cache is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		repo:      params.Repo,
		products:  params.Products,
		snapshots: params.Snapshots,
		logg:      params.Logger,
	}, nil
}

// GetCart serves the cached snapshot when present, otherwise loads from the
// database and repopulates the cache.
func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	var cached CartDTO
	hit, err := s.snapshots.Get(ctx, cache.SnapshotCart, userID.String(), &cached)
	if err != nil {
		s.logg.Warn(ctx, "cart.snapshot.read_failed")
	}
	if hit {
		return &cached, nil
	}

	dto, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.snapshots.Put(ctx, cache.SnapshotCart, userID.String(), dto); err != nil {
		s.logg.Warn(ctx, "cart.snapshot.write_failed")
	}
	return dto, nil
}

// AddItem adds one unit of the product. Adding a product already in the cart
// bumps its quantity instead of creating a second line.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error) {
	product, err := s.products.FindActiveByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	if err := s.repo.AddOne(ctx, userID, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart item")
	}
	return s.afterMutation(ctx, userID)
}

// UpdateQuantity sets the absolute quantity for a cart line. A quantity of
// zero or below removes the line, matching an explicit remove. Updating a
// product that is not in the cart leaves the cart unchanged.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	updated, err := s.repo.SetQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart quantity")
	}
	if !updated {
		return s.GetCart(ctx, userID)
	}
	return s.afterMutation(ctx, userID)
}

// RemoveItem deletes the line for the given product. Removing an absent
// product succeeds without changing the cart.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error) {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	return s.afterMutation(ctx, userID)
}

// Clear empties the user's cart.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return s.afterMutation(ctx, userID)
}

func (s *service) load(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
	}
	return cartFromModels(items), nil
}

// afterMutation drops the snapshot and returns the fresh database state. The
// snapshot stays absent until the next read repopulates it, so a cache write
// can never race the mutation into staleness.
func (s *service) afterMutation(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	if err := s.snapshots.Invalidate(ctx, cache.SnapshotCart, userID.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "invalidate cart snapshot")
	}
	return s.load(ctx, userID)
}
