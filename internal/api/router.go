// Package api provides the HTTP API for ClimaSphere.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/api/handler"
	"github.com/climasphere/climasphere/internal/api/middleware"
	"github.com/climasphere/climasphere/internal/api/response"
	"github.com/climasphere/climasphere/internal/provider/resilience"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version         string
	BuildTime       string
	Logger          zerolog.Logger
	ServiceName     string
	Metrics         *middleware.Metrics
	FeedRegistry    *resilience.Registry
	ComfortService  handler.ComfortService
	BushfireService handler.BushfireService
	FloodService    handler.FloodService
	CycloneService  handler.CycloneService
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "climasphere-api"
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
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "no such route")
	})

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.FeedRegistry)
	comfortHandler := handler.NewComfortHandler(cfg.ComfortService)
	bushfireHandler := handler.NewBushfireHandler(cfg.BushfireService)
	floodHandler := handler.NewFloodHandler(cfg.FloodService)
	cycloneHandler := handler.NewCycloneHandler(cfg.CycloneService)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// Ops endpoints (public)
	r.Route("/v1/ops", func(r chi.Router) {
		r.Get("/health", opsHandler.HealthCheck)
		r.Get("/ready", opsHandler.ReadinessCheck)
		r.Get("/status", opsHandler.SystemStatus)
	})

	// Comfort risk (single point) - standard rate limiting
	r.With(standardRateLimit).Get("/api/comfort-risk", comfortHandler.ComfortRisk)

	// Hazard prediction endpoints. The all-states batches fan out to every
	// upstream feed, so they carry the stricter limit. Both verbs are
	// accepted for the batch and early endpoints.
	r.Route("/predict", func(r chi.Router) {
		r.With(standardRateLimit).Get("/cyclone", cycloneHandler.Point)

		r.Group(func(r chi.Router) {
			r.Use(expensiveRateLimit)
			r.Get("/bushfire/all", bushfireHandler.All)
			r.Post("/bushfire/all", bushfireHandler.All)
			r.Get("/flood/all", floodHandler.All)
			r.Post("/flood/all", floodHandler.All)
			r.Get("/cyclone/all", cycloneHandler.All)
			r.Post("/cyclone/all", cycloneHandler.All)
		})

		r.Group(func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/bushfire/early", bushfireHandler.Early)
			r.Post("/bushfire/early", bushfireHandler.Early)
			r.Get("/flood/early", floodHandler.Early)
			r.Post("/flood/early", floodHandler.Early)
			r.Get("/cyclone/early", cycloneHandler.Early)
			r.Post("/cyclone/early", cycloneHandler.Early)
		})
	})

	return r
}
