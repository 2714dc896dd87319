// Package api provides the HTTP API for CamperPlan.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/camperplan/camperplan/internal/api/handler"
	"github.com/camperplan/camperplan/internal/api/middleware"
	"github.com/camperplan/camperplan/internal/auth"
	"github.com/camperplan/camperplan/internal/trip"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version       string
	BuildTime     string
	Logger        zerolog.Logger
	ServiceName   string
	Metrics       *middleware.Metrics
	EngineMetrics *middleware.EngineMetrics
	JWTService    *auth.JWTService
	TripService   *trip.Service

	// ReadyChecks are named readiness probes, typically a database
	// ping, surfaced on /v1/ops/ready.
	ReadyChecks map[string]handler.ReadyCheck
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "camperplan-api"
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

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.ReadyChecks)
	metadataHandler := handler.NewMetadataHandler()
	planHandler := handler.NewPlanHandler(cfg.EngineMetrics)
	optimizeHandler := handler.NewOptimizeHandler(cfg.EngineMetrics)
	tripHandler := handler.NewTripHandler(cfg.TripService, cfg.EngineMetrics)

	// Create auth middleware
	authMiddleware := middleware.Auth(cfg.JWTService)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/seasons/{season}", metadataHandler.GetSeason)
			r.Get("/enums", metadataHandler.GetEnums)
		})

		// Compute endpoints (public) - expensive compute, strict rate limiting
		r.With(expensiveRateLimit).Post("/plans:compute", planHandler.ComputePlan)
		r.With(expensiveRateLimit).Post("/routes:optimize", optimizeHandler.OptimizeRoute)

		// Trip endpoints (authenticated) - user-based rate limiting
		r.Route("/trips", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RateLimitByUser(middleware.StandardRateLimit)) // 100 req/min per user
			r.Get("/", tripHandler.ListTrips)
			r.Post("/", tripHandler.CreateTrip)
			r.Route("/{tripId}", func(r chi.Router) {
				r.Get("/", tripHandler.GetTrip)
				r.Put("/", tripHandler.UpdateTrip)
				r.Delete("/", tripHandler.DeleteTrip)
			})
			// Engine actions over a stored trip share the expensive budget
			r.With(expensiveRateLimit).Post("/{tripId}:plan", tripHandler.PlanTrip)
			r.With(expensiveRateLimit).Post("/{tripId}:optimize", tripHandler.OptimizeTrip)
			r.With(expensiveRateLimit).Post("/{tripId}:applyOptimization", tripHandler.ApplyOptimization)
		})
	})

	return r
}
