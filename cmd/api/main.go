// Package main provides the entrypoint for the ClimaSphere API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/api"
	"github.com/climasphere/climasphere/internal/api/middleware"
	"github.com/climasphere/climasphere/internal/config"
	"github.com/climasphere/climasphere/internal/hazard/bushfire"
	"github.com/climasphere/climasphere/internal/hazard/comfort"
	"github.com/climasphere/climasphere/internal/hazard/cyclone"
	"github.com/climasphere/climasphere/internal/hazard/flood"
	"github.com/climasphere/climasphere/internal/provider/resilience"
	"github.com/climasphere/climasphere/internal/telemetry"
	"github.com/climasphere/climasphere/internal/upstream/bom"
	"github.com/climasphere/climasphere/internal/upstream/earthdata"
	"github.com/climasphere/climasphere/internal/upstream/indices"
	"github.com/climasphere/climasphere/internal/upstream/power"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "climasphere-api"

	// Load .env for local development; absence is fine
	_ = godotenv.Load()

	cfg := config.FromEnv()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("env", cfg.Env).
		Msg("starting ClimaSphere API")

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// One resilient HTTP client per upstream feed, each with its own
	// circuit breaker and per-feed timeout matching the source's latency.
	powerHTTP := resilience.NewClient(withTimeout(power.FeedName, 2*time.Second))
	earthdataHTTP := resilience.NewClient(withTimeout(earthdata.FeedName, 20*time.Second))
	indicesHTTP := resilience.NewClient(withTimeout(indices.FeedName, 3*time.Second))
	bomHTTP := resilience.NewClient(withTimeout(bom.FeedName, 10*time.Second))

	feeds := resilience.NewRegistry()
	feeds.Register(power.FeedName, powerHTTP)
	feeds.Register(earthdata.FeedName, earthdataHTTP)
	feeds.Register(indices.FeedName, indicesHTTP)
	feeds.Register(bom.FeedName, bomHTTP)

	// Upstream feed clients
	powerClient := power.NewClient(power.ClientConfig{
		BaseURL:    cfg.PowerBaseURL,
		HTTPClient: powerHTTP,
		Logger:     log,
	})
	earthdataClient := earthdata.NewClient(earthdata.ClientConfig{
		Token:          cfg.EarthdataToken,
		GESDISCBaseURL: cfg.GESDISCBaseURL,
		GEOSBaseURL:    cfg.GEOSBaseURL,
		HTTPClient:     earthdataHTTP,
		Logger:         log,
	})
	indicesClient := indices.NewClient(indices.ClientConfig{
		ONIURL:     cfg.ONIURL,
		IODURL:     cfg.IODURL,
		HTTPClient: indicesHTTP,
		Logger:     log,
	})
	bomClient := bom.NewClient(bom.ClientConfig{
		WarningsURL: cfg.BOMWarningsURL,
		HTTPClient:  bomHTTP,
		Logger:      log,
	})

	if !earthdataClient.HasToken() {
		log.Warn().Msg("no Earthdata token configured - gridded sources disabled, using climatology fallback")
	}

	// Hazard services
	comfortService := comfort.NewService(comfort.ServiceConfig{
		Gridded:     earthdataClient,
		Climatology: powerClient,
		Logger:      log,
	})
	bushfireService := bushfire.NewService(bushfire.ServiceConfig{
		Fire:    powerClient,
		Indices: indicesClient,
		Logger:  log,
	})
	floodService := flood.NewService(flood.ServiceConfig{
		Rain:       powerClient,
		Gridded:    earthdataClient,
		Indices:    indicesClient,
		Warnings:   bomClient,
		Logger:     log,
		Budget:     cfg.FloodBatchBudget,
		RiverLevel: cfg.RiverLevelDefault,
		LiveReads:  cfg.FloodLiveReads,
	})
	cycloneService := cyclone.NewService(cyclone.ServiceConfig{
		Met:      powerClient,
		Rainfall: earthdataClient,
		Warnings: bomClient,
		Indices:  indicesClient,
		Logger:   log,
	})
	log.Info().Msg("hazard services initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		FeedRegistry:    feeds,
		ComfortService:  comfortService,
		BushfireService: bushfireService,
		FloodService:    floodService,
		CycloneService:  cycloneService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

func withTimeout(name string, timeout time.Duration) resilience.ClientConfig {
	c := resilience.DefaultClientConfig(name)
	c.Timeout = timeout
	return c
}
