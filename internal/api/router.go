// Package api provides the HTTP API for skycast.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/api/handler"
	"github.com/skycast/skycast/internal/api/middleware"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version    string
	BuildTime  string
	Logger     zerolog.Logger
	Metrics    *middleware.Metrics
	Controller handler.Controller
	Store      handler.Snapshotter
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)              // Generate/propagate request ID first
	r.Use(middleware.Tracing("skycast-api")) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.RequireJSON)          // Content-Type check on writes
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	dashboardHandler := handler.NewDashboardHandler(cfg.Controller, cfg.Store, cfg.Logger)

	// Rate limit middleware for different endpoint categories
	suggestRateLimit := middleware.RateLimitByIP(middleware.SuggestRateLimit) // 120 req/min
	searchRateLimit := middleware.RateLimitByIP(middleware.SearchRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Dashboard endpoints
		r.Route("/dashboard", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", dashboardHandler.Get)
			// Search and retry fan out to both upstream providers
			r.With(searchRateLimit).Post("/search", dashboardHandler.Search)
			r.With(searchRateLimit).Post("/retry", dashboardHandler.Retry)
			r.With(standardRateLimit).Put("/units", dashboardHandler.SetUnits)
		})

		// Autocomplete - keystroke-driven, bounded by its own limit
		r.With(suggestRateLimit).Get("/locations/suggest", dashboardHandler.Suggest)
	})

	return r
}
