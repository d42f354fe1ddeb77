package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RitikRK96/esnan-digital/api/controllers"
	"github.com/RitikRK96/esnan-digital/api/middleware"
	"github.com/RitikRK96/esnan-digital/internal/auth"
	"github.com/RitikRK96/esnan-digital/internal/bookings"
	"github.com/RitikRK96/esnan-digital/internal/cart"
	"github.com/RitikRK96/esnan-digital/internal/contact"
	"github.com/RitikRK96/esnan-digital/internal/media"
	"github.com/RitikRK96/esnan-digital/internal/orders"
	"github.com/RitikRK96/esnan-digital/internal/products"
	"github.com/RitikRK96/esnan-digital/internal/users"
	"github.com/RitikRK96/esnan-digital/pkg/auth/session"
	"github.com/RitikRK96/esnan-digital/pkg/config"
	"github.com/RitikRK96/esnan-digital/pkg/logger"
	"github.com/RitikRK96/esnan-digital/pkg/metrics"
	"github.com/RitikRK96/esnan-digital/pkg/redis"
)

// Services bundles the domain services the router mounts.
type Services struct {
	Auth     auth.Service
	Register auth.RegisterService
	Cart     cart.Service
	Products products.Service
	Orders   orders.Service
	Bookings bookings.Service
	Contact  contact.Service
	Media    media.Service
	Profile  users.Service
}

// Dependencies carries the infrastructure the middleware chain needs.
type Dependencies struct {
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler
	HealthProbes   map[string]controllers.Pinger
}

// NewRouter wires every endpoint with the shared middleware chain.
func NewRouter(cfg *config.Config, logg *logger.Logger, svcs Services, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// A typed nil must not reach the middleware as a non-nil interface.
	var idemStore redis.IdempotencyStore
	var limiterStore middleware.RateLimiterStore
	if deps.Redis != nil {
		idemStore = deps.Redis
		limiterStore = deps.Redis
	}

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.HealthProbes))
	})

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, limiterStore, logg)).
			Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.With(
			middleware.AuthRateLimit(registerPolicy, limiterStore, logg),
			middleware.Idempotency(idemStore, logg),
		).Post("/register", controllers.AuthRegister(svcs.Register, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionChecker, logg)).
			Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
	})

	// Public storefront surface.
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductsCatalog(svcs.Products, logg))
		r.Get("/{productId}", controllers.ProductsGet(svcs.Products, logg))
	})
	r.Get("/api/v1/bookings/cities", controllers.BookingsCities(svcs.Bookings, logg))
	r.With(middleware.Idempotency(idemStore, logg)).
		Post("/api/v1/contact", controllers.ContactSubmit(svcs.Contact, logg))

	// Authenticated surface.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(svcs.Cart, logg))
			r.Delete("/", controllers.CartClear(svcs.Cart, logg))
			r.Post("/items", controllers.CartAddItem(svcs.Cart, logg))
			r.Put("/items/{productId}", controllers.CartUpdateQuantity(svcs.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(svcs.Cart, logg))
		})

		r.Post("/checkout", controllers.Checkout(svcs.Orders, logg))
		r.Get("/orders", controllers.OrdersList(svcs.Orders, logg))

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", controllers.BookingsHistory(svcs.Bookings, logg))
			r.Post("/", controllers.BookingsCreate(svcs.Bookings, logg))
		})

		r.Post("/media/presign", controllers.MediaPresign(svcs.Media, logg))

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(svcs.Profile, logg))
			r.Put("/", controllers.ProfileUpdate(svcs.Profile, logg))
		})
	})

	return r
}
