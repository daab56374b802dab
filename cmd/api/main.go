// Package main provides the entrypoint for the skycast API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/api"
	"github.com/skycast/skycast/internal/api/middleware"
	"github.com/skycast/skycast/internal/dashboard"
	"github.com/skycast/skycast/internal/forecast"
	forecastmeteo "github.com/skycast/skycast/internal/forecast/openmeteo"
	"github.com/skycast/skycast/internal/geocode"
	geocodemeteo "github.com/skycast/skycast/internal/geocode/openmeteo"
	"github.com/skycast/skycast/internal/provider/resilience"
	"github.com/skycast/skycast/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "skycast-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting skycast API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	upstreamTimeout := dashboard.DefaultUpstreamTimeout
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal().Err(err).Str("value", raw).Msg("invalid UPSTREAM_TIMEOUT")
		}
		upstreamTimeout = parsed
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
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

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	providerMetrics, err := middleware.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// Initialize geocoding provider and service
	geocodeClient := geocodemeteo.NewClient(geocodemeteo.ClientConfig{
		BaseURL: os.Getenv("GEOCODING_BASE_URL"),
		HTTPClient: resilience.NewClient(
			resilience.DefaultClientConfig(geocodemeteo.ProviderName)),
		Logger: log,
	})
	geocodeService := geocode.NewService(geocode.ServiceConfig{
		Provider: geocodeClient,
		Logger:   log,
		Metrics:  providerMetrics,
	})
	log.Info().Msg("geocoding service initialized")

	// Initialize forecast provider and service
	forecastClient := forecastmeteo.NewClient(forecastmeteo.ClientConfig{
		BaseURL: os.Getenv("FORECAST_BASE_URL"),
		HTTPClient: resilience.NewClient(
			resilience.DefaultClientConfig(forecastmeteo.ProviderName)),
		Logger: log,
	})
	forecastService := forecast.NewService(forecast.ServiceConfig{
		Provider: forecastClient,
		Logger:   log,
		Metrics:  providerMetrics,
	})
	log.Info().Msg("forecast service initialized")

	// Initialize the dashboard: store, session, controller
	store := dashboard.NewStore()
	controller := dashboard.NewController(dashboard.ControllerConfig{
		Geocoder:        geocodeService,
		Forecaster:      forecastService,
		Renderer:        store,
		Logger:          log,
		UpstreamTimeout: upstreamTimeout,
	})
	log.Info().Msg("dashboard controller initialized")

	// Load the default location before the first request arrives.
	go controller.Bootstrap(ctx)

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:    Version,
		BuildTime:  BuildTime,
		Logger:     log,
		Metrics:    metrics,
		Controller: controller,
		Store:      store,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
