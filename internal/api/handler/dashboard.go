// Package handler contains the HTTP handlers for the skycast API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/api/models"
	"github.com/skycast/skycast/internal/api/response"
	"github.com/skycast/skycast/internal/dashboard"
	"github.com/skycast/skycast/internal/geocode"
)

// Controller drives the dashboard in response to API requests.
type Controller interface {
	Search(ctx context.Context, query string) error
	Retry(ctx context.Context)
	Suggest(ctx context.Context, query string, limit int) ([]geocode.Candidate, error)
	SetUnit(kind, value string) error
}

// Snapshotter exposes the latest display snapshot.
type Snapshotter interface {
	Snapshot() (dashboard.DisplayState, string, *dashboard.View)
}

// DashboardHandler serves the dashboard endpoints. Upstream failures surface
// as display states in a 200 snapshot, not as HTTP errors; only invalid
// requests produce problem responses.
type DashboardHandler struct {
	controller Controller
	store      Snapshotter
	logger     zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(controller Controller, store Snapshotter, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		controller: controller,
		store:      store,
		logger:     logger,
	}
}

// Get handles GET /v1/dashboard.
// Returns the current display snapshot without triggering any fetch.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeSnapshot(w, r)
}

// Search handles POST /v1/dashboard/search.
// Resolves the query, fetches its forecast and returns the resulting snapshot.
func (h *DashboardHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return
	}

	if err := h.controller.Search(r.Context(), req.Query); err != nil {
		if errors.Is(err, dashboard.ErrEmptyQuery) {
			response.BadRequest(w, r, "query must not be blank", []models.FieldError{
				{Field: "query", Message: "must not be blank", Code: "required"},
			})
			return
		}
		h.logger.Error().Err(err).Msg("search failed")
		response.InternalError(w, r, "search failed")
		return
	}

	h.writeSnapshot(w, r)
}

// Retry handles POST /v1/dashboard/retry.
// Re-fetches the forecast for the current location.
func (h *DashboardHandler) Retry(w http.ResponseWriter, r *http.Request) {
	h.controller.Retry(r.Context())
	h.writeSnapshot(w, r)
}

// SetUnits handles PUT /v1/dashboard/units.
// Updates one unit preference and re-renders from the cached payload.
func (h *DashboardHandler) SetUnits(w http.ResponseWriter, r *http.Request) {
	var req models.UnitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return
	}

	if err := h.controller.SetUnit(req.Kind, req.Value); err != nil {
		switch {
		case errors.Is(err, dashboard.ErrUnknownUnitKind):
			response.BadRequest(w, r, "unknown unit kind", []models.FieldError{
				{Field: "kind", Message: "must be temperature, wind or precipitation", Code: "invalid"},
			})
		case errors.Is(err, dashboard.ErrUnknownUnitValue):
			response.BadRequest(w, r, "unknown unit value", []models.FieldError{
				{Field: "value", Message: "not a valid unit for this kind", Code: "invalid"},
			})
		default:
			h.logger.Error().Err(err).Msg("unit change failed")
			response.InternalError(w, r, "unit change failed")
		}
		return
	}

	h.writeSnapshot(w, r)
}

// Suggest handles GET /v1/locations/suggest?query=...&limit=...
func (h *DashboardHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, r, "invalid limit", []models.FieldError{
				{Field: "limit", Message: "must be a non-negative integer", Code: "invalid"},
			})
			return
		}
		limit = parsed
	}

	candidates, err := h.controller.Suggest(r.Context(), query, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("query", query).Msg("suggestion lookup failed")
		response.ServiceUnavailable(w, r, "geocoding provider unavailable")
		return
	}

	suggestions := make([]models.Suggestion, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, models.NewSuggestion(c))
	}

	response.JSON(w, r, http.StatusOK, models.SuggestionsResponse{Suggestions: suggestions})
}

func (h *DashboardHandler) writeSnapshot(w http.ResponseWriter, r *http.Request) {
	state, searchText, view := h.store.Snapshot()
	response.JSON(w, r, http.StatusOK, models.DashboardResponse{
		State:      state,
		SearchText: searchText,
		View:       view,
	})
}
