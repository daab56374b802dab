package models

import (
	"time"

	"github.com/skycast/skycast/internal/dashboard"
	"github.com/skycast/skycast/internal/geocode"
)

// DashboardResponse is the full display snapshot: the current state of the
// state machine, the search field text, and the rendered view. View is nil
// while loading without a prior render and in the no-results and error states.
type DashboardResponse struct {
	State      dashboard.DisplayState `json:"state"`
	SearchText string                 `json:"searchText"`
	View       *dashboard.View        `json:"view,omitempty"`
}

// SearchRequest asks for a forecast by free-text place query.
type SearchRequest struct {
	Query string `json:"query"`
}

// UnitsRequest changes one display-unit preference.
type UnitsRequest struct {
	// Kind is one of "temperature", "wind", "precipitation".
	Kind string `json:"kind"`
	// Value is the unit name, e.g. "fahrenheit" or "mph".
	Value string `json:"value"`
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Label     string  `json:"label"`
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SuggestionsResponse carries autocomplete candidates in provider order.
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// NewSuggestion converts a geocoding candidate into its API shape.
func NewSuggestion(c geocode.Candidate) Suggestion {
	return Suggestion{
		Label:     c.DisplayLabel(),
		Name:      c.Name,
		Country:   c.Country,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

// HealthStatusOK is the healthy status value.
const HealthStatusOK = "ok"

// Health reports service liveness or readiness.
type Health struct {
	Status  string         `json:"status"`
	Time    time.Time      `json:"time"`
	Details map[string]any `json:"details,omitempty"`
}
