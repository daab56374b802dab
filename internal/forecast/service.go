// Package forecast retrieves raw forecast payloads from a weather provider.
package forecast

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// MetricsRecorder records upstream request metrics.
type MetricsRecorder interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
}

// Provider is a forecast upstream.
type Provider interface {
	// Forecast fetches current, hourly and daily blocks for a location, with
	// timestamps localized to the location's own timezone.
	Forecast(ctx context.Context, lat, lon float64) (*Payload, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the forecast service.
type ServiceConfig struct {
	Provider Provider
	Logger   zerolog.Logger
	// Metrics is optional; when nil no instrumentation is recorded.
	Metrics MetricsRecorder
}

// Service fetches forecast payloads with coordinate validation and logging.
type Service struct {
	provider Provider
	logger   zerolog.Logger
	metrics  MetricsRecorder
}

// NewService creates a new forecast service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// Forecast returns the payload for a location.
func (s *Service) Forecast(ctx context.Context, lat, lon float64) (*Payload, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Str("provider", s.provider.Name()).
		Msg("fetching forecast")

	start := time.Now()
	payload, err := s.provider.Forecast(ctx, lat, lon)
	if s.metrics != nil {
		s.metrics.RecordRequest(s.provider.Name(), "forecast", time.Since(start), err)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("forecast fetch failed")
		return nil, err
	}

	if payload.Hourly.IsEmpty() || payload.Daily.IsEmpty() {
		// Tolerated: rendering substitutes placeholders for missing blocks.
		s.logger.Warn().
			Bool("hourly_empty", payload.Hourly.IsEmpty()).
			Bool("daily_empty", payload.Daily.IsEmpty()).
			Msg("forecast payload has missing blocks")
	}

	return payload, nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
