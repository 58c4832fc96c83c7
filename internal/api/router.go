// Package api provides the HTTP API for AgriSense.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/api/handler"
	"github.com/agrisense/agrisense/internal/api/middleware"
	"github.com/agrisense/agrisense/internal/provider/resilience"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger           zerolog.Logger
	ServiceName      string
	Metrics          *middleware.Metrics
	WeatherHandler   *handler.WeatherHandler
	PriceHandler     *handler.PriceHandler
	YieldHandler     *handler.YieldHandler
	MetadataHandler  *handler.MetadataHandler
	ProviderRegistry *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "agrisense-api"
	}

	registry := cfg.ProviderRegistry
	if registry == nil {
		registry = resilience.GlobalRegistry
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	opsHandler := handler.NewOpsHandler(registry)

	// Rate limit middleware per endpoint cost
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.Health)
			r.Get("/ready", opsHandler.Ready)
		})

		// Metadata endpoints - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/locations", cfg.MetadataHandler.Locations)
		})

		// Advisory endpoints fan out to upstream providers - strict rate limiting
		r.Route("/weather", func(r chi.Router) {
			r.Use(expensiveRateLimit)
			r.Get("/", cfg.WeatherHandler.Get)
			r.Post("/", cfg.WeatherHandler.Post)
		})

		r.With(expensiveRateLimit).Post("/prices", cfg.PriceHandler.Lookup)
		r.With(expensiveRateLimit).Post("/yield", cfg.YieldHandler.Predict)
	})

	return r
}
