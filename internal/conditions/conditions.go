// Package conditions maps WMO weather interpretation codes to the icon
// categories the dashboard ships. The table is an external contract with the
// icon set and must not drift.
package conditions

// Category is one of the seven icon categories.
type Category string

const (
	Clear        Category = "clear"
	PartlyCloudy Category = "partly-cloudy"
	Overcast     Category = "overcast"
	Fog          Category = "fog"
	Rain         Category = "rain"
	Snow         Category = "snow"
	Storm        Category = "storm"
)

// Classify maps a weather code to its icon category. Unrecognized codes fall
// back to Clear.
func Classify(code int) Category {
	switch code {
	case 0:
		return Clear
	case 1, 2:
		return PartlyCloudy
	case 3:
		return Overcast
	case 45, 48:
		return Fog
	case 51, 53, 55, 56, 57, 61, 63, 65, 80, 81, 82:
		return Rain
	case 66, 67, 71, 73, 75, 85, 86:
		return Snow
	case 95, 96, 99:
		return Storm
	default:
		return Clear
	}
}
