// Package units provides measurement conversions and display formatting for
// the dashboard. All conversions are pure; formatting degrades to the
// placeholder glyph instead of rendering NaN.
package units

import (
	"fmt"
	"math"
)

// Placeholder is rendered wherever a value is missing or not a number.
const Placeholder = "—"

// TemperatureUnit is a user-selectable temperature display unit.
type TemperatureUnit string

// WindUnit is a user-selectable wind speed display unit.
type WindUnit string

// PrecipitationUnit is a user-selectable precipitation display unit.
type PrecipitationUnit string

const (
	Celsius    TemperatureUnit   = "celsius"
	Fahrenheit TemperatureUnit   = "fahrenheit"
	Kmh        WindUnit          = "kmh"
	Mph        WindUnit          = "mph"
	Mm         PrecipitationUnit = "mm"
	Inches     PrecipitationUnit = "inches"
)

// Preferences holds the selected display unit for each measurement.
// The zero value is not valid; use DefaultPreferences.
type Preferences struct {
	Temperature   TemperatureUnit   `json:"temperature"`
	Wind          WindUnit          `json:"wind"`
	Precipitation PrecipitationUnit `json:"precipitation"`
}

// DefaultPreferences returns the metric defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Temperature:   Celsius,
		Wind:          Kmh,
		Precipitation: Mm,
	}
}

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// MsToKmh converts metres per second to kilometres per hour.
func MsToKmh(ms float64) float64 {
	return ms * 3.6
}

// KmhToMph converts kilometres per hour to miles per hour.
func KmhToMph(kmh float64) float64 {
	return kmh * 0.621371
}

// MmToInches converts millimetres to inches.
func MmToInches(mm float64) float64 {
	return mm / 25.4
}

// ConvertTemperature maps a Celsius value to the requested display unit.
func ConvertTemperature(c float64, unit TemperatureUnit) float64 {
	if unit == Fahrenheit {
		return CelsiusToFahrenheit(c)
	}
	return c
}

// ConvertWind maps a m/s value to the requested display unit.
func ConvertWind(ms float64, unit WindUnit) float64 {
	kmh := MsToKmh(ms)
	if unit == Mph {
		return KmhToMph(kmh)
	}
	return kmh
}

// FormatTemperature renders a temperature already in display units.
// Rounding is half away from zero (math.Round).
func FormatTemperature(v float64) string {
	if !isDisplayable(v) {
		return Placeholder
	}
	return fmt.Sprintf("%d°", int(math.Round(v)))
}

// FormatWind renders a wind speed already in display units, with its label.
func FormatWind(v float64, unit WindUnit) string {
	if !isDisplayable(v) {
		return Placeholder
	}
	label := "km/h"
	if unit == Mph {
		label = "mph"
	}
	return fmt.Sprintf("%d %s", int(math.Round(v)), label)
}

// FormatHumidity renders a relative humidity percentage.
func FormatHumidity(v float64) string {
	if !isDisplayable(v) {
		return Placeholder
	}
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

// FormatPrecipitation renders a millimetre value in the requested unit:
// rounded integer for mm, two decimals for inches.
func FormatPrecipitation(mm float64, unit PrecipitationUnit) string {
	if !isDisplayable(mm) {
		return Placeholder
	}
	if unit == Inches {
		return fmt.Sprintf("%.2f in", MmToInches(mm))
	}
	return fmt.Sprintf("%d mm", int(math.Round(mm)))
}

func isDisplayable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
