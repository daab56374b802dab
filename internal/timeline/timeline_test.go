package timeline_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/timeline"
)

func TestFindCurrentHourIndex(t *testing.T) {
	timestamps := []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T02:00"}
	now := time.Date(2024, 1, 1, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, 1, timeline.FindCurrentHourIndex(timestamps, now))
}

func TestFindCurrentHourIndex_NotFound(t *testing.T) {
	now := time.Date(2024, 1, 2, 5, 0, 0, 0, time.UTC)

	// Empty series.
	assert.Equal(t, timeline.IndexNotFound, timeline.FindCurrentHourIndex(nil, now))

	// Non-matching series: not-found, never a fallback to index 0.
	timestamps := []string{"2024-01-01T00:00", "2024-01-01T01:00"}
	assert.Equal(t, timeline.IndexNotFound, timeline.FindCurrentHourIndex(timestamps, now))
}

func TestFindCurrentHourIndex_SkipsMalformed(t *testing.T) {
	now := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	timestamps := []string{"", "bad", "2024-01-01T01:00"}

	assert.Equal(t, 2, timeline.FindCurrentHourIndex(timestamps, now))
}

func TestGroupByCalendarDay(t *testing.T) {
	var timestamps []string
	for _, day := range []string{"2024-01-01", "2024-01-02"} {
		for h := 0; h < 24; h++ {
			timestamps = append(timestamps, fmt.Sprintf("%sT%02d:00", day, h))
		}
	}

	groups := timeline.GroupByCalendarDay(timestamps)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-01-01", groups[0].Date)
	assert.Equal(t, "Monday", groups[0].Label)
	assert.Len(t, groups[0].Indices, 24)
	assert.Equal(t, 0, groups[0].Indices[0])

	assert.Equal(t, "2024-01-02", groups[1].Date)
	assert.Equal(t, "Tuesday", groups[1].Label)
	assert.Len(t, groups[1].Indices, 24)
	assert.Equal(t, 24, groups[1].Indices[0])
}

func TestGroupByCalendarDay_Empty(t *testing.T) {
	assert.Empty(t, timeline.GroupByCalendarDay(nil))
	assert.Empty(t, timeline.GroupByCalendarDay([]string{"", "x"}))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Mon", timeline.ShortWeekdayLabel("2024-01-01"))
	assert.Equal(t, "Monday", timeline.WeekdayLabel("2024-01-01T12:00"))
	assert.Equal(t, "3 PM", timeline.ClockLabel("2024-01-01T15:00"))
	assert.Equal(t, "12 AM", timeline.ClockLabel("2024-01-01T00:00"))

	assert.Equal(t, "—", timeline.ShortWeekdayLabel("not-a-date"))
	assert.Equal(t, "—", timeline.ClockLabel(""))
}
