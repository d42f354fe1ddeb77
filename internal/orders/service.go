package orders

import (
	"context"
	"fmt"

	"github.com/RitikRK96/esnan-digital/pkg/cache"
	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/RitikRK96/esnan-digital/pkg/logger"
	"github.com/RitikRK96/esnan-digital/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns checkout and order history.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*OrderDTO, error)
	ListOrders(ctx context.Context, userID uuid.UUID, params pagination.Params) (*PageDTO, error)
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	Repo      Repository
	Tx        txRunner
	Snapshots cache.Store
	Logger    *logger.Logger
}

type service struct {
	repo      Repository
	tx        txRunner
	snapshots cache.Store
	logg      *logger.Logger
}

// NewService validates dependencies and returns an orders service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.Snapshots == nil {
		return nil, fmt.Errorf("snapshot cache is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		repo:      params.Repo,
		tx:        params.Tx,
		snapshots: params.Snapshots,
		logg:      params.Logger,
	}, nil
}

// Checkout freezes the current cart into an order and clears the cart, both
// inside one transaction. An empty cart cannot be checked out.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID) (*OrderDTO, error) {
	var order *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		items, err := repo.ListCartItems(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
		}
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		order = orderFromCart(userID, items)
		if err := repo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}
		return repo.ClearCart(ctx, userID)
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checkout")
	}

	// The order is committed; a failed invalidate only delays cart
	// convergence until the snapshot TTL, so it must not fail the checkout.
	if err := s.snapshots.Invalidate(ctx, cache.SnapshotCart, userID.String()); err != nil {
		s.logg.Error(ctx, "checkout.snapshot.invalidate_failed", err)
	}

	dto := FromModel(*order)
	return &dto, nil
}

// ListOrders returns one cursor page of the user's order history.
func (s *service) ListOrders(ctx context.Context, userID uuid.UUID, params pagination.Params) (*PageDTO, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	orders, next, err := s.repo.List(ctx, listOrdersParams{
		UserID: userID,
		Limit:  params.Limit,
		Cursor: cursor,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	page := &PageDTO{Orders: make([]OrderDTO, 0, len(orders))}
	for _, order := range orders {
		page.Orders = append(page.Orders, FromModel(order))
	}
	if next != nil {
		page.NextCursor = pagination.EncodeCursor(*next)
	}
	return page, nil
}

func orderFromCart(userID uuid.UUID, items []models.CartItem) *models.Order {
	order := &models.Order{
		UserID: userID,
		Status: enums.OrderStatusPlaced,
		Items:  make([]models.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		lineTotal := item.PriceRupees * item.Quantity
		order.Items = append(order.Items, models.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			PriceRupees:     item.PriceRupees,
			Quantity:        item.Quantity,
			ImageURL:        item.ImageURL,
			Category:        item.Category,
			LineTotalRupees: lineTotal,
		})
		order.TotalRupees += lineTotal
	}
	return order
}
