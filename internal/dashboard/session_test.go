package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/dashboard"
	"github.com/skycast/skycast/internal/units"
)

func TestSession_Defaults(t *testing.T) {
	s := dashboard.NewSession(dashboard.DefaultLocation())

	assert.Equal(t, "Berlin, Germany", s.Location().DisplayName)
	assert.Equal(t, 52.52, s.Location().Latitude)
	assert.Equal(t, 13.405, s.Location().Longitude)
	assert.Equal(t, units.DefaultPreferences(), s.Preferences())
	assert.False(t, s.HasPayload())
}

func TestSession_SetLocationAndPayload(t *testing.T) {
	s := dashboard.NewSession(dashboard.DefaultLocation())

	s.SetLocationAndPayload(testLocation(), testPayload())

	loc, payload, prefs := s.Snapshot()
	assert.Equal(t, "Berlin, Germany", loc.DisplayName)
	require.NotNil(t, payload)
	assert.Equal(t, units.DefaultPreferences(), prefs)
	assert.True(t, s.HasPayload())
}

func TestSession_SetUnit(t *testing.T) {
	s := dashboard.NewSession(dashboard.DefaultLocation())

	require.NoError(t, s.SetUnit("temperature", "fahrenheit"))
	require.NoError(t, s.SetUnit("wind", "mph"))
	require.NoError(t, s.SetUnit("precipitation", "inches"))

	prefs := s.Preferences()
	assert.Equal(t, units.Fahrenheit, prefs.Temperature)
	assert.Equal(t, units.Mph, prefs.Wind)
	assert.Equal(t, units.Inches, prefs.Precipitation)
}

func TestSession_SetUnit_Validation(t *testing.T) {
	s := dashboard.NewSession(dashboard.DefaultLocation())

	assert.ErrorIs(t, s.SetUnit("temperature", "kelvin"), dashboard.ErrUnknownUnitValue)
	assert.ErrorIs(t, s.SetUnit("wind", "knots"), dashboard.ErrUnknownUnitValue)
	assert.ErrorIs(t, s.SetUnit("precipitation", "liters"), dashboard.ErrUnknownUnitValue)
	assert.ErrorIs(t, s.SetUnit("pressure", "hpa"), dashboard.ErrUnknownUnitKind)

	// Failed updates leave preferences untouched.
	assert.Equal(t, units.DefaultPreferences(), s.Preferences())
}

func TestSession_PreferencesSurviveRefetch(t *testing.T) {
	s := dashboard.NewSession(dashboard.DefaultLocation())
	require.NoError(t, s.SetUnit("temperature", "fahrenheit"))

	s.SetLocationAndPayload(testLocation(), testPayload())

	assert.Equal(t, units.Fahrenheit, s.Preferences().Temperature)
}
