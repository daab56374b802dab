package forecast

import (
	"errors"
	"math"
	"time"
)

// Forecast errors.
var (
	ErrProviderUnavailable = errors.New("forecast provider unavailable")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")

	// ErrMissingCurrent means the upstream answered without the
	// current-conditions block, which makes the payload unusable.
	ErrMissingCurrent = errors.New("payload missing current conditions")
)

// Payload is the raw forecast for one location. It is replaced wholesale on
// every successful fetch, never merged or patched.
type Payload struct {
	Latitude  float64
	Longitude float64

	// Current is always present in a successful payload.
	Current Current

	// Hourly and Daily may be empty when the upstream omits or mangles the
	// block; rendering treats an empty series as "no data for that section".
	Hourly Hourly
	Daily  Daily

	FetchedAt time.Time
}

// Current holds instantaneous conditions.
type Current struct {
	// Temperature in °C.
	Temperature float64

	// WindSpeed in m/s.
	WindSpeed float64

	// Code is the weather condition code.
	Code int

	// Time is the local ISO timestamp of the observation.
	Time string
}

// Hourly holds parallel sequences of equal length; index i in every sequence
// describes the same timestamp.
type Hourly struct {
	Time          []string
	Temperature   []float64 // °C
	Humidity      []float64 // %
	WindSpeed     []float64 // m/s
	Precipitation []float64 // mm
	Code          []int
}

// IsEmpty reports whether the hourly block carries no samples.
func (h Hourly) IsEmpty() bool {
	return len(h.Time) == 0
}

// TemperatureAt returns the temperature at index i, or NaN when the index is
// outside the series.
func (h Hourly) TemperatureAt(i int) float64 {
	return at(h.Temperature, i)
}

// HumidityAt returns the relative humidity at index i, or NaN.
func (h Hourly) HumidityAt(i int) float64 {
	return at(h.Humidity, i)
}

// PrecipitationAt returns the precipitation at index i, or NaN.
func (h Hourly) PrecipitationAt(i int) float64 {
	return at(h.Precipitation, i)
}

// CodeAt returns the condition code at index i, or 0.
func (h Hourly) CodeAt(i int) int {
	if i < 0 || i >= len(h.Code) {
		return 0
	}
	return h.Code[i]
}

// Daily holds parallel sequences of equal length, one entry per day.
type Daily struct {
	Time             []string
	Code             []int
	TemperatureMax   []float64 // °C
	TemperatureMin   []float64 // °C
	PrecipitationSum []float64 // mm
}

// IsEmpty reports whether the daily block carries no entries.
func (d Daily) IsEmpty() bool {
	return len(d.Time) == 0
}

// TemperatureMaxAt returns the daily maximum at index i, or NaN.
func (d Daily) TemperatureMaxAt(i int) float64 {
	return at(d.TemperatureMax, i)
}

// TemperatureMinAt returns the daily minimum at index i, or NaN.
func (d Daily) TemperatureMinAt(i int) float64 {
	return at(d.TemperatureMin, i)
}

// PrecipitationSumAt returns the daily precipitation sum at index i, or NaN.
func (d Daily) PrecipitationSumAt(i int) float64 {
	return at(d.PrecipitationSum, i)
}

// CodeAt returns the condition code at index i, or 0.
func (d Daily) CodeAt(i int) int {
	if i < 0 || i >= len(d.Code) {
		return 0
	}
	return d.Code[i]
}

// at guards parallel-series access: a missing value surfaces as NaN and the
// formatting layer turns it into the placeholder glyph.
func at(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return math.NaN()
	}
	return s[i]
}
