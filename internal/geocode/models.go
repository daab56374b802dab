package geocode

import (
	"errors"
	"strings"
)

// Geocoding errors.
var (
	// ErrNoMatch means the query resolved to zero candidates. It is a valid
	// outcome, distinct from a transport or parse failure.
	ErrNoMatch = errors.New("no matching place")

	// ErrProviderUnavailable means the geocoding upstream could not be reached
	// or returned an unusable response.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// Candidate is a geocoded place result.
type Candidate struct {
	Name        string  `json:"name"`
	AdminRegion string  `json:"adminRegion,omitempty"`
	Country     string  `json:"country,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// DisplayLabel composes "name[, adminRegion][, country]", omitting absent
// parts without dangling separators.
func (c Candidate) DisplayLabel() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Name, c.AdminRegion, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Location converts the candidate into the session's current location.
func (c Candidate) Location() Location {
	return Location{
		DisplayName: c.DisplayLabel(),
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
	}
}

// Location is the resolved place a forecast is fetched for. Immutable once
// created; replaced wholesale on a new successful search.
type Location struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
