package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/skycast/skycast/internal/conditions"
	"github.com/skycast/skycast/internal/forecast"
	"github.com/skycast/skycast/internal/geocode"
	"github.com/skycast/skycast/internal/timeline"
	"github.com/skycast/skycast/internal/units"
)

// Display constraints, not data limits.
const (
	maxDailyEntries  = 7
	maxHourlyEntries = 8
)

// Build projects a payload into a display-ready View under the selected
// units. It is a pure function of its inputs; missing data degrades to the
// placeholder glyph field by field.
func Build(payload *forecast.Payload, loc geocode.Location, prefs units.Preferences, now time.Time) View {
	hourIdx := timeline.FindCurrentHourIndex(payload.Hourly.Time, now)

	return View{
		Current: buildCurrent(payload, loc, prefs, now, hourIdx),
		Daily:   buildDaily(payload.Daily, prefs),
		Days:    buildDays(payload.Hourly, prefs),
	}
}

func buildCurrent(payload *forecast.Payload, loc geocode.Location, prefs units.Preferences, now time.Time, hourIdx int) CurrentConditions {
	label := loc.DisplayName
	if label == "" {
		label = fmt.Sprintf("%.2f, %.2f", payload.Latitude, payload.Longitude)
	}

	temp := units.FormatTemperature(units.ConvertTemperature(payload.Current.Temperature, prefs.Temperature))

	return CurrentConditions{
		Location:    label,
		Date:        now.Format("Monday, Jan 2, 2006"),
		Temperature: temp,
		FeelsLike:   temp,
		Humidity:    buildHumidity(payload.Hourly, hourIdx),
		Wind:        units.FormatWind(units.ConvertWind(payload.Current.WindSpeed, prefs.Wind), prefs.Wind),
		Precipitation: units.FormatPrecipitation(
			precipitationValue(payload, hourIdx), prefs.Precipitation),
		Icon: conditions.Classify(payload.Current.Code),
	}
}

func buildHumidity(hourly forecast.Hourly, hourIdx int) string {
	if hourIdx == timeline.IndexNotFound {
		return units.Placeholder
	}
	return units.FormatHumidity(hourly.HumidityAt(hourIdx))
}

// precipitationValue prefers the hourly value at the current hour and falls
// back to the first daily precipitation sum. NaN means both were absent.
func precipitationValue(payload *forecast.Payload, hourIdx int) float64 {
	if hourIdx != timeline.IndexNotFound {
		if v := payload.Hourly.PrecipitationAt(hourIdx); !math.IsNaN(v) {
			return v
		}
	}
	return payload.Daily.PrecipitationSumAt(0)
}

func buildDaily(daily forecast.Daily, prefs units.Preferences) []DailyEntry {
	n := len(daily.Time)
	if n > maxDailyEntries {
		n = maxDailyEntries
	}

	entries := make([]DailyEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, DailyEntry{
			Label: timeline.ShortWeekdayLabel(daily.Time[i]),
			Icon:  conditions.Classify(daily.CodeAt(i)),
			Max:   units.FormatTemperature(units.ConvertTemperature(daily.TemperatureMaxAt(i), prefs.Temperature)),
			Min:   units.FormatTemperature(units.ConvertTemperature(daily.TemperatureMinAt(i), prefs.Temperature)),
		})
	}
	return entries
}

func buildDays(hourly forecast.Hourly, prefs units.Preferences) []DayView {
	groups := timeline.GroupByCalendarDay(hourly.Time)

	days := make([]DayView, 0, len(groups))
	for gi, group := range groups {
		indices := group.Indices
		if len(indices) > maxHourlyEntries {
			indices = indices[:maxHourlyEntries]
		}

		hours := make([]HourlyEntry, 0, len(indices))
		for _, i := range indices {
			hours = append(hours, HourlyEntry{
				Time:        timeline.ClockLabel(hourly.Time[i]),
				Icon:        conditions.Classify(hourly.CodeAt(i)),
				Temperature: units.FormatTemperature(units.ConvertTemperature(hourly.TemperatureAt(i), prefs.Temperature)),
			})
		}

		days = append(days, DayView{
			Date:     group.Date,
			Label:    group.Label,
			Selected: gi == 0, // first group auto-selected on every render
			Hours:    hours,
		})
	}
	return days
}
