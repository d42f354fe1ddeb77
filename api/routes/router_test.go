package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RitikRK96/esnan-digital/api/controllers"
	"github.com/RitikRK96/esnan-digital/internal/auth"
	"github.com/RitikRK96/esnan-digital/internal/bookings"
	"github.com/RitikRK96/esnan-digital/internal/cart"
	"github.com/RitikRK96/esnan-digital/internal/contact"
	"github.com/RitikRK96/esnan-digital/internal/media"
	"github.com/RitikRK96/esnan-digital/internal/orders"
	"github.com/RitikRK96/esnan-digital/internal/products"
	"github.com/RitikRK96/esnan-digital/internal/users"
	pkgAuth "github.com/RitikRK96/esnan-digital/pkg/auth"
	"github.com/RitikRK96/esnan-digital/pkg/auth/session"
	"github.com/RitikRK96/esnan-digital/pkg/config"
	"github.com/RitikRK96/esnan-digital/pkg/logger"
	"github.com/RitikRK96/esnan-digital/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{}, nil
}

type stubCartService struct{}

func (stubCartService) GetCart(ctx context.Context, userID uuid.UUID) (*cart.CartDTO, error) {
	return &cart.CartDTO{}, nil
}

func (stubCartService) AddItem(ctx context.Context, userID, productID uuid.UUID) (*cart.CartDTO, error) {
	return &cart.CartDTO{}, nil
}

func (stubCartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*cart.CartDTO, error) {
	return &cart.CartDTO{}, nil
}

func (stubCartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*cart.CartDTO, error) {
	return &cart.CartDTO{}, nil
}

func (stubCartService) Clear(ctx context.Context, userID uuid.UUID) (*cart.CartDTO, error) {
	return &cart.CartDTO{}, nil
}

type stubProductsService struct{}

func (stubProductsService) Catalog(ctx context.Context) (*products.CatalogDTO, error) {
	return &products.CatalogDTO{}, nil
}

func (stubProductsService) GetProduct(ctx context.Context, id uuid.UUID) (*products.ProductDTO, error) {
	return &products.ProductDTO{}, nil
}

type stubOrdersService struct{}

func (stubOrdersService) Checkout(ctx context.Context, userID uuid.UUID) (*orders.OrderDTO, error) {
	return &orders.OrderDTO{}, nil
}

func (stubOrdersService) ListOrders(ctx context.Context, userID uuid.UUID, params pagination.Params) (*orders.PageDTO, error) {
	return &orders.PageDTO{}, nil
}

type stubBookingsService struct{}

func (stubBookingsService) CreateBooking(ctx context.Context, userID uuid.UUID, req bookings.CreateBookingRequest) (*bookings.BookingDTO, error) {
	return &bookings.BookingDTO{}, nil
}

func (stubBookingsService) History(ctx context.Context, userID uuid.UUID) (*bookings.HistoryDTO, error) {
	return &bookings.HistoryDTO{}, nil
}

func (stubBookingsService) ListCities(ctx context.Context) []bookings.CityDTO {
	return nil
}

type stubContactService struct{}

func (stubContactService) Submit(ctx context.Context, req contact.SubmitRequest) (*contact.MessageDTO, error) {
	return &contact.MessageDTO{}, nil
}

type stubMediaService struct{}

func (stubMediaService) PresignUpload(ctx context.Context, userID uuid.UUID, req media.PresignRequest) (*media.PresignResponse, error) {
	return &media.PresignResponse{}, nil
}

type stubProfileService struct{}

func (stubProfileService) Profile(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func (stubProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req users.UpdateProfileRequest) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		Services{
			Auth:     stubAuthService{},
			Register: stubRegisterService{},
			Cart:     stubCartService{},
			Products: stubProductsService{},
			Orders:   stubOrdersService{},
			Bookings: stubBookingsService{},
			Contact:  stubContactService{},
			Media:    stubMediaService{},
			Profile:  stubProfileService{},
		},
		Dependencies{
			SessionChecker: stubSessionChecker{},
			HealthProbes: map[string]controllers.Pinger{
				"postgres": stubPinger{},
				"redis":    stubPinger{},
			},
		},
	)
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "devotee@example.com",
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestPrivateGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestPrivateGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for authed cart got %d", resp.Code)
	}
}

func TestPublicCatalogNeedsNoToken(t *testing.T) {
	router := newTestRouter(testConfig())
	for _, path := range []string{"/api/v1/products", "/api/v1/bookings/cities"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestLoginRejectsBadJSON(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestCheckoutRequiresToken(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous checkout got %d", resp.Code)
	}
}

func TestCheckoutSucceedsWithToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for authed checkout got %d", resp.Code)
	}
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
}

func TestHealthReadyReportsProbes(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for readiness got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "postgres") || !strings.Contains(body, "redis") {
		t.Fatalf("expected probe names in body got %s", body)
	}
}

func TestContactIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	body := `{"name":"Ramesh","email":"ramesh@example.com","subject":"Puja timings","message":"When does the morning aarti start at the ghat?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for contact submit got %d", resp.Code)
	}
}
