package cart

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/RitikRK96/esnan-digital/pkg/cache"
	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/RitikRK96/esnan-digital/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeCartRepo struct {
	items     []models.CartItem
	listCalls int
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	f.listCalls++
	var out []models.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) AddOne(ctx context.Context, userID uuid.UUID, product *models.Product) error {
	for i := range f.items {
		if f.items[i].UserID == userID && f.items[i].ProductID == product.ID {
			f.items[i].Quantity++
			return nil
		}
	}
	f.items = append(f.items, models.CartItem{
		ID:          uuid.New(),
		UserID:      userID,
		ProductID:   product.ID,
		Name:        product.Name,
		PriceRupees: product.PriceRupees,
		Quantity:    1,
		ImageURL:    product.ImageURL,
		Category:    product.Category,
	})
	return nil
}

func (f *fakeCartRepo) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (bool, error) {
	for i := range f.items {
		if f.items[i].UserID == userID && f.items[i].ProductID == productID {
			f.items[i].Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCartRepo) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			continue
		}
		kept = append(kept, item)
	}
	f.items = kept
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.UserID == userID {
			continue
		}
		kept = append(kept, item)
	}
	f.items = kept
	return nil
}

type fakeProducts struct {
	byID map[uuid.UUID]*models.Product
}

func (f *fakeProducts) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if product, ok := f.byID[id]; ok {
		return product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSnapshots struct {
	entries map[string][]byte
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{entries: map[string][]byte{}}
}

func (f *fakeSnapshots) key(name, userID string) string { return name + "|" + userID }

func (f *fakeSnapshots) Get(ctx context.Context, name, userID string, dest any) (bool, error) {
	raw, ok := f.entries[f.key(name, userID)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeSnapshots) Put(ctx context.Context, name, userID string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[f.key(name, userID)] = raw
	return nil
}

func (f *fakeSnapshots) Invalidate(ctx context.Context, name, userID string) error {
	delete(f.entries, f.key(name, userID))
	return nil
}

func (f *fakeSnapshots) has(name, userID string) bool {
	_, ok := f.entries[f.key(name, userID)]
	return ok
}

func gangajal() *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Name:        "Gangajal Bottle (500ml)",
		Category:    enums.ProductCategoryHolyWater,
		PriceRupees: 251,
		ImageURL:    "https://cdn.example.com/gangajal.jpg",
		IsActive:    true,
	}
}

func newCartService(t *testing.T, repo *fakeCartRepo, products *fakeProducts, snaps *fakeSnapshots) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Products:  products,
		Snapshots: snaps,
		Logger:    logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestAddItemTwiceCollapsesIntoOneLine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := gangajal()
	repo := &fakeCartRepo{}
	svc := newCartService(t, repo, &fakeProducts{byID: map[uuid.UUID]*models.Product{product.ID: product}}, newFakeSnapshots())

	if _, err := svc.AddItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	dto, err := svc.AddItem(ctx, userID, product.ID)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(dto.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(dto.Items))
	}
	if dto.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", dto.Items[0].Quantity)
	}
	if dto.TotalPriceRupees != 502 {
		t.Fatalf("expected total 502, got %d", dto.TotalPriceRupees)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := gangajal()
	repo := &fakeCartRepo{}
	svc := newCartService(t, repo, &fakeProducts{byID: map[uuid.UUID]*models.Product{product.ID: product}}, newFakeSnapshots())

	if _, err := svc.AddItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.UpdateQuantity(ctx, userID, product.ID, 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(dto.Items))
	}
}

func TestUpdateQuantityOnMissingLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t, &fakeCartRepo{}, &fakeProducts{byID: map[uuid.UUID]*models.Product{}}, newFakeSnapshots())

	dto, err := svc.UpdateQuantity(ctx, uuid.New(), uuid.New(), 3)
	if err != nil {
		t.Fatalf("update absent: %v", err)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("expected the cart untouched, got %d lines", len(dto.Items))
	}
}

func TestRemoveMissingLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := gangajal()
	repo := &fakeCartRepo{}
	svc := newCartService(t, repo, &fakeProducts{byID: map[uuid.UUID]*models.Product{product.ID: product}}, newFakeSnapshots())

	if _, err := svc.AddItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.RemoveItem(ctx, userID, uuid.New())
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(dto.Items) != 1 {
		t.Fatalf("expected the cart untouched, got %d lines", len(dto.Items))
	}
}

func TestTotalsSumAcrossLines(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	water := gangajal()
	prasadam := &models.Product{
		ID:          uuid.New(),
		Name:        "Prasadam Box",
		Category:    enums.ProductCategoryPrasadam,
		PriceRupees: 180,
		ImageURL:    "https://cdn.example.com/prasadam.jpg",
		IsActive:    true,
	}
	svc := newCartService(t, &fakeCartRepo{}, &fakeProducts{byID: map[uuid.UUID]*models.Product{
		water.ID:    water,
		prasadam.ID: prasadam,
	}}, newFakeSnapshots())

	for i := 0; i < 3; i++ {
		if _, err := svc.AddItem(ctx, userID, water.ID); err != nil {
			t.Fatalf("add water: %v", err)
		}
	}
	dto, err := svc.AddItem(ctx, userID, prasadam.ID)
	if err != nil {
		t.Fatalf("add prasadam: %v", err)
	}

	if dto.TotalItems != 4 {
		t.Fatalf("expected 4 units, got %d", dto.TotalItems)
	}
	want := 3*251 + 180
	if dto.TotalPriceRupees != want {
		t.Fatalf("expected total %d, got %d", want, dto.TotalPriceRupees)
	}
}

func TestSnapshotAbsentAfterMutationAndRebuiltOnRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := gangajal()
	repo := &fakeCartRepo{}
	snaps := newFakeSnapshots()
	svc := newCartService(t, repo, &fakeProducts{byID: map[uuid.UUID]*models.Product{product.ID: product}}, snaps)

	if _, err := svc.GetCart(ctx, userID); err != nil {
		t.Fatalf("initial read: %v", err)
	}
	if !snaps.has(cache.SnapshotCart, userID.String()) {
		t.Fatal("expected snapshot after read")
	}

	if _, err := svc.AddItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if snaps.has(cache.SnapshotCart, userID.String()) {
		t.Fatal("expected snapshot gone after mutation")
	}

	listCallsBefore := repo.listCalls
	if _, err := svc.GetCart(ctx, userID); err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if repo.listCalls != listCallsBefore+1 {
		t.Fatal("expected the re-read to hit the database")
	}

	// Warm snapshot now serves the next read without a database call.
	listCallsBefore = repo.listCalls
	dto, err := svc.GetCart(ctx, userID)
	if err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if repo.listCalls != listCallsBefore {
		t.Fatal("expected the cached read to skip the database")
	}
	if dto.TotalPriceRupees != 251 {
		t.Fatalf("expected total 251, got %d", dto.TotalPriceRupees)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := gangajal()
	snaps := newFakeSnapshots()
	svc := newCartService(t, &fakeCartRepo{}, &fakeProducts{byID: map[uuid.UUID]*models.Product{product.ID: product}}, snaps)

	if _, err := svc.AddItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.Clear(ctx, userID)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(dto.Items) != 0 || dto.TotalItems != 0 || dto.TotalPriceRupees != 0 {
		t.Fatalf("expected empty cart, got %+v", dto)
	}
	if snaps.has(cache.SnapshotCart, userID.String()) {
		t.Fatal("expected snapshot gone after clear")
	}
}

func TestAddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t, &fakeCartRepo{}, &fakeProducts{byID: map[uuid.UUID]*models.Product{}}, newFakeSnapshots())

	_, err := svc.AddItem(ctx, uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
