package dashboard

import (
	"errors"
	"sync"

	"github.com/skycast/skycast/internal/forecast"
	"github.com/skycast/skycast/internal/geocode"
	"github.com/skycast/skycast/internal/units"
)

// Session errors.
var (
	ErrUnknownUnitKind  = errors.New("unknown unit kind")
	ErrUnknownUnitValue = errors.New("unknown unit value")
)

// Session is the single mutable state of one dashboard: the current location,
// the last fetched payload (nil before the first load) and the selected
// display units. It lives for the process lifetime and is overwritten, never
// torn down.
type Session struct {
	mu       sync.RWMutex
	location geocode.Location
	payload  *forecast.Payload
	prefs    units.Preferences
}

// NewSession creates a session anchored at the given location, with metric
// unit defaults and no payload.
func NewSession(location geocode.Location) *Session {
	return &Session{
		location: location,
		prefs:    units.DefaultPreferences(),
	}
}

// Location returns the current location.
func (s *Session) Location() geocode.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// Preferences returns the selected display units.
func (s *Session) Preferences() units.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// HasPayload reports whether a forecast has been fetched yet.
func (s *Session) HasPayload() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payload != nil
}

// Snapshot returns the location, payload and preferences as one consistent
// read. The payload may be nil.
func (s *Session) Snapshot() (geocode.Location, *forecast.Payload, units.Preferences) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location, s.payload, s.prefs
}

// SetLocationAndPayload replaces the location and payload atomically.
func (s *Session) SetLocationAndPayload(location geocode.Location, payload *forecast.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = location
	s.payload = payload
}

// SetUnit updates one display-unit preference. Preferences persist across
// re-fetches within the session.
func (s *Session) SetUnit(kind, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case "temperature":
		switch u := units.TemperatureUnit(value); u {
		case units.Celsius, units.Fahrenheit:
			s.prefs.Temperature = u
		default:
			return ErrUnknownUnitValue
		}
	case "wind":
		switch u := units.WindUnit(value); u {
		case units.Kmh, units.Mph:
			s.prefs.Wind = u
		default:
			return ErrUnknownUnitValue
		}
	case "precipitation":
		switch u := units.PrecipitationUnit(value); u {
		case units.Mm, units.Inches:
			s.prefs.Precipitation = u
		default:
			return ErrUnknownUnitValue
		}
	default:
		return ErrUnknownUnitKind
	}
	return nil
}
