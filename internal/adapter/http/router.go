package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/obinna/walletcore/internal/adapter/http/handler"
	"github.com/obinna/walletcore/internal/adapter/http/middleware"
	"github.com/obinna/walletcore/internal/infrastructure/auth"
	"github.com/obinna/walletcore/internal/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	WalletHandler    *handler.WalletHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints, rate limited per IP
		r.Group(func(r chi.Router) {
			if cfg.RateLimiter != nil {
				r.Use(cfg.RateLimiter.Limit)
			}
			r.Post("/users", cfg.AuthHandler.Register)
			r.Post("/users/login", cfg.AuthHandler.Login)
		})

		// Wallet endpoints require a token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTManager))

			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
				r.Use(idempotencyMiddleware.Wrap)
			}

			r.Get("/users/me", cfg.AuthHandler.GetCurrentUser)

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", cfg.WalletHandler.Balance)
				r.Post("/fund", cfg.WalletHandler.Fund)
				r.Post("/withdraw", cfg.WalletHandler.Withdraw)
				r.Post("/transfer", cfg.WalletHandler.Transfer)
			})
		})
	})

	return r
}
