package dashboard

import "github.com/skycast/skycast/internal/conditions"

// View is the display-ready projection of the session handed to the renderer.
// Every field is a formatted string or an icon category; a missing value is
// the placeholder glyph, never an empty number.
type View struct {
	Current CurrentConditions `json:"current"`
	Daily   []DailyEntry      `json:"daily"`
	Days    []DayView         `json:"days"`
}

// CurrentConditions is the named-field record for the main panel.
type CurrentConditions struct {
	Location    string `json:"location"`
	Date        string `json:"date"`
	Temperature string `json:"temperature"`

	// FeelsLike mirrors the current temperature; the source data carries no
	// independent feels-like value, so this is an approximation by contract.
	FeelsLike string `json:"feelsLike"`

	Humidity      string              `json:"humidity"`
	Wind          string              `json:"wind"`
	Precipitation string              `json:"precipitation"`
	Icon          conditions.Category `json:"icon"`
}

// DailyEntry is one cell of the 7-day strip.
type DailyEntry struct {
	Label string              `json:"label"`
	Icon  conditions.Category `json:"icon"`
	Max   string              `json:"max"`
	Min   string              `json:"min"`
}

// DayView is one day-picker option together with its hourly list.
type DayView struct {
	Date     string        `json:"date"`
	Label    string        `json:"label"`
	Selected bool          `json:"selected"`
	Hours    []HourlyEntry `json:"hours"`
}

// HourlyEntry is one row of the hourly list.
type HourlyEntry struct {
	Time        string              `json:"time"`
	Icon        conditions.Category `json:"icon"`
	Temperature string              `json:"temperature"`
}
