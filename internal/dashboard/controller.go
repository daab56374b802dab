// Package dashboard holds the weather dashboard core: the session state, the
// render pipeline projecting payloads into display-ready records, the display
// state machine, and the controller that sequences search, fetch, render and
// state transitions.
package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/forecast"
	"github.com/skycast/skycast/internal/geocode"
)

// ErrEmptyQuery is returned for a blank search query.
var ErrEmptyQuery = errors.New("empty search query")

// DefaultUpstreamTimeout bounds a single resolve-or-fetch flow. A hung
// upstream becomes an Error-state transition instead of an indefinite
// Loading state.
const DefaultUpstreamTimeout = 10 * time.Second

// DefaultLocation is the hardcoded initial location, loaded before any user
// interaction.
func DefaultLocation() geocode.Location {
	return geocode.Location{
		DisplayName: "Berlin, Germany",
		Latitude:    52.52,
		Longitude:   13.405,
	}
}

// Geocoder resolves free-text queries into places.
type Geocoder interface {
	Suggest(ctx context.Context, query string, limit int) ([]geocode.Candidate, error)
	ResolveFirst(ctx context.Context, query string) (geocode.Candidate, error)
}

// Forecaster fetches forecast payloads for coordinates.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64) (*forecast.Payload, error)
}

// ControllerConfig holds configuration for the dashboard controller.
type ControllerConfig struct {
	Geocoder   Geocoder
	Forecaster Forecaster
	Renderer   Renderer
	Session    *Session
	Logger     zerolog.Logger

	// UpstreamTimeout bounds each resolve/fetch flow (default 10s).
	UpstreamTimeout time.Duration

	// Clock supplies "now" for time alignment (default time.Now).
	Clock func() time.Time
}

// Controller orchestrates the dashboard: user input to location resolution to
// forecast fetch to session update to render to display-state transition. It
// is the sole writer of the session.
type Controller struct {
	geocoder   Geocoder
	forecaster Forecaster
	renderer   Renderer
	session    *Session
	logger     zerolog.Logger
	timeout    time.Duration
	clock      func() time.Time

	// seq tags each fetch flow; a completion whose tag is no longer the
	// newest is discarded so a stale response can never overwrite a fresher
	// one.
	seq atomic.Uint64
}

// NewController creates a dashboard controller.
func NewController(cfg ControllerConfig) *Controller {
	timeout := cfg.UpstreamTimeout
	if timeout == 0 {
		timeout = DefaultUpstreamTimeout
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	session := cfg.Session
	if session == nil {
		session = NewSession(DefaultLocation())
	}

	return &Controller{
		geocoder:   cfg.Geocoder,
		forecaster: cfg.Forecaster,
		renderer:   cfg.Renderer,
		session:    session,
		logger:     cfg.Logger,
		timeout:    timeout,
		clock:      clock,
	}
}

// Bootstrap performs the automatic initial load for the session's location
// (the hardcoded default on first start).
func (c *Controller) Bootstrap(ctx context.Context) {
	c.renderer.ShowLoading()
	c.fetchAndRender(ctx, c.seq.Add(1), c.session.Location())
}

// Search resolves a free-text query to a place and fetches its forecast.
// Zero candidates transitions to NoResults; any transport or parse failure
// transitions to Error. A blank query is rejected without touching the
// display state.
func (c *Controller) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}

	c.renderer.ShowLoading()
	seq := c.seq.Add(1)

	rctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	candidate, err := c.geocoder.ResolveFirst(rctx, query)
	if c.stale(seq) {
		c.logger.Debug().Str("query", query).Msg("discarding stale resolution")
		return nil
	}
	if errors.Is(err, geocode.ErrNoMatch) {
		c.renderer.ShowNoResults()
		return nil
	}
	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("location resolution failed")
		c.renderer.ShowError()
		return nil
	}

	c.fetchAndRender(ctx, seq, candidate.Location())
	return nil
}

// Retry re-fetches the forecast for the session's current location.
func (c *Controller) Retry(ctx context.Context) {
	c.renderer.ShowLoading()
	c.fetchAndRender(ctx, c.seq.Add(1), c.session.Location())
}

// Suggest returns autocomplete candidates for a partial query. Queries
// shorter than two characters yield an empty list without a remote call.
func (c *Controller) Suggest(ctx context.Context, query string, limit int) ([]geocode.Candidate, error) {
	sctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.geocoder.Suggest(sctx, query, limit)
}

// SetUnit updates one display-unit preference and, when a payload is already
// cached, re-renders from it without any network call.
func (c *Controller) SetUnit(kind, value string) error {
	if err := c.session.SetUnit(kind, value); err != nil {
		return err
	}
	if c.session.HasPayload() {
		c.renderCached()
	}
	return nil
}

// fetchAndRender runs one tagged fetch flow: forecast fetch, staleness check,
// session update, render, state transition. No failure path leaves the
// display state in Loading.
func (c *Controller) fetchAndRender(ctx context.Context, seq uint64, loc geocode.Location) {
	fctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := c.forecaster.Forecast(fctx, loc.Latitude, loc.Longitude)
	if c.stale(seq) {
		c.logger.Debug().
			Str("location", loc.DisplayName).
			Msg("discarding stale forecast response")
		return
	}
	if err != nil {
		c.logger.Error().Err(err).
			Str("location", loc.DisplayName).
			Float64("lat", loc.Latitude).
			Float64("lon", loc.Longitude).
			Msg("forecast fetch failed")
		c.renderer.ShowError()
		return
	}

	c.session.SetLocationAndPayload(loc, payload)
	c.renderCached()

	c.logger.Info().
		Str("location", loc.DisplayName).
		Msg("dashboard rendered")
}

// renderCached rebuilds the view from the cached session and publishes it.
func (c *Controller) renderCached() {
	loc, payload, prefs := c.session.Snapshot()
	if payload == nil {
		return
	}
	c.renderer.ShowContent(Build(payload, loc, prefs, c.clock()))
}

func (c *Controller) stale(seq uint64) bool {
	return c.seq.Load() != seq
}
