// Package geocode resolves free-text place queries into coordinates through a
// geocoding provider.
package geocode

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// MinQueryLength is the shortest query forwarded to the provider; anything
// shorter short-circuits to an empty result without a remote call.
const MinQueryLength = 2

// DefaultSuggestLimit bounds autocomplete result counts.
const DefaultSuggestLimit = 5

// Provider is a geocoding upstream.
type Provider interface {
	// Search returns candidates for a free-text query, in provider order.
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)

	// Name returns the provider name for logging.
	Name() string
}

// MetricsRecorder records upstream request metrics.
type MetricsRecorder interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
}

// ServiceConfig holds configuration for the geocoding service.
type ServiceConfig struct {
	Provider Provider
	Logger   zerolog.Logger
	// Metrics is optional; when nil no instrumentation is recorded.
	Metrics MetricsRecorder
}

// Service resolves place queries. Result ordering is whatever the provider
// returns; there is no local re-ranking.
type Service struct {
	provider Provider
	logger   zerolog.Logger
	metrics  MetricsRecorder
}

// NewService creates a new geocoding service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// Suggest returns up to limit candidates for an autocomplete query. An empty
// slice is a valid, non-error outcome.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	start := time.Now()
	candidates, err := s.provider.Search(ctx, query, limit)
	if s.metrics != nil {
		s.metrics.RecordRequest(s.provider.Name(), "suggest", time.Since(start), err)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Str("provider", s.provider.Name()).
			Str("query", query).
			Msg("suggestion lookup failed")
		return nil, err
	}

	return candidates, nil
}

// ResolveFirst returns the provider's top match for the query, or ErrNoMatch
// when the query resolves to zero candidates.
func (s *Service) ResolveFirst(ctx context.Context, query string) (Candidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return Candidate{}, ErrNoMatch
	}

	start := time.Now()
	candidates, err := s.provider.Search(ctx, query, 1)
	if s.metrics != nil {
		s.metrics.RecordRequest(s.provider.Name(), "resolve", time.Since(start), err)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Str("provider", s.provider.Name()).
			Str("query", query).
			Msg("resolution failed")
		return Candidate{}, err
	}
	if len(candidates) == 0 {
		return Candidate{}, ErrNoMatch
	}

	return candidates[0], nil
}
