package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/marcelofdiniz/paysim/internal/adapter/http/handler"
	"github.com/marcelofdiniz/paysim/internal/adapter/http/middleware"
	"github.com/marcelofdiniz/paysim/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SimulationHandler *handler.SimulationHandler
	HealthHandler     *handler.HealthHandler
	Logger            zerolog.Logger
	IdempotencyStore  usecase.IdempotencyStore
	RateLimitRPS      float64
	RateLimitBurst    int
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

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
			r.Use(limiter.Limit)
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Simulations
		r.Route("/simulations", func(r chi.Router) {
			r.Post("/", cfg.SimulationHandler.Create)
			r.Post("/compare", cfg.SimulationHandler.Compare)
			r.Get("/{id}", cfg.SimulationHandler.Get)
			r.Get("/{id}/ledger", cfg.SimulationHandler.GetLedger)
		})
	})

	return r
}
