// Package timeline aligns "now" against the forecast's hourly time series and
// groups hourly samples by calendar day. Timestamps are ISO-8601 strings in
// the payload's local time; comparisons are literal prefix matches, never
// timezone math.
package timeline

import "time"

// IndexNotFound is returned when no sample matches. It is distinct from a
// valid index; callers must treat it as "no data", not as index 0.
const IndexNotFound = -1

const (
	hourPrefixLen = len("2006-01-02T15")
	datePrefixLen = len("2006-01-02")
)

// DayGroup is the set of hourly-series indices sharing one calendar date.
type DayGroup struct {
	// Date is the 10-character calendar-date key, e.g. "2024-01-01".
	Date string

	// Label is the weekday name of the group's first member, e.g. "Monday".
	Label string

	// Indices are the hourly-series positions for this date, in series order.
	Indices []int
}

// FindCurrentHourIndex returns the index of the sample sharing now's
// year-month-day-hour, or IndexNotFound if no sample matches.
func FindCurrentHourIndex(timestamps []string, now time.Time) int {
	target := now.Format("2006-01-02T15")
	for i, ts := range timestamps {
		if len(ts) < hourPrefixLen {
			continue
		}
		if ts[:hourPrefixLen] == target {
			return i
		}
	}
	return IndexNotFound
}

// GroupByCalendarDay partitions hourly-series indices into groups keyed by
// calendar date, preserving first-seen order of distinct dates. Timestamps too
// short to carry a date are skipped.
func GroupByCalendarDay(timestamps []string) []DayGroup {
	var groups []DayGroup
	byDate := make(map[string]int)

	for i, ts := range timestamps {
		if len(ts) < datePrefixLen {
			continue
		}
		date := ts[:datePrefixLen]
		pos, ok := byDate[date]
		if !ok {
			pos = len(groups)
			byDate[date] = pos
			groups = append(groups, DayGroup{
				Date:  date,
				Label: WeekdayLabel(ts),
			})
		}
		groups[pos].Indices = append(groups[pos].Indices, i)
	}

	return groups
}

// WeekdayLabel returns the full weekday name for a timestamp, or the
// placeholder for one that does not parse.
func WeekdayLabel(timestamp string) string {
	t, ok := parseLocal(timestamp)
	if !ok {
		return "—"
	}
	return t.Format("Monday")
}

// ShortWeekdayLabel returns the abbreviated weekday name for a timestamp, or
// the placeholder for one that does not parse.
func ShortWeekdayLabel(timestamp string) string {
	t, ok := parseLocal(timestamp)
	if !ok {
		return "—"
	}
	return t.Format("Mon")
}

// ClockLabel returns a 12-hour clock label ("3 PM") for a timestamp, or the
// placeholder for one that does not parse.
func ClockLabel(timestamp string) string {
	t, ok := parseLocal(timestamp)
	if !ok {
		return "—"
	}
	return t.Format("3 PM")
}

// parseLocal parses the ISO forms the forecast service emits: a bare date or
// a date-time without offset.
func parseLocal(timestamp string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
