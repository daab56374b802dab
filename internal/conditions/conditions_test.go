package conditions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skycast/skycast/internal/conditions"
)

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		codes []int
		want  conditions.Category
	}{
		{[]int{0}, conditions.Clear},
		{[]int{1, 2}, conditions.PartlyCloudy},
		{[]int{3}, conditions.Overcast},
		{[]int{45, 48}, conditions.Fog},
		{[]int{51, 53, 55, 56, 57, 61, 63, 65, 80, 81, 82}, conditions.Rain},
		{[]int{66, 67, 71, 73, 75, 85, 86}, conditions.Snow},
		{[]int{95, 96, 99}, conditions.Storm},
	}

	for _, tc := range tests {
		for _, code := range tc.codes {
			assert.Equal(t, tc.want, conditions.Classify(code), "code %d", code)
		}
	}
}

func TestClassifyTotality(t *testing.T) {
	listed := map[int]conditions.Category{}
	for cat, codes := range map[conditions.Category][]int{
		conditions.Clear:        {0},
		conditions.PartlyCloudy: {1, 2},
		conditions.Overcast:     {3},
		conditions.Fog:          {45, 48},
		conditions.Rain:         {51, 53, 55, 56, 57, 61, 63, 65, 80, 81, 82},
		conditions.Snow:         {66, 67, 71, 73, 75, 85, 86},
		conditions.Storm:        {95, 96, 99},
	} {
		for _, c := range codes {
			listed[c] = cat
		}
	}

	valid := map[conditions.Category]bool{
		conditions.Clear: true, conditions.PartlyCloudy: true, conditions.Overcast: true,
		conditions.Fog: true, conditions.Rain: true, conditions.Snow: true, conditions.Storm: true,
	}

	// Every integer in [-100, 150] yields exactly one category; codes outside
	// the table fall back to clear.
	for code := -100; code <= 150; code++ {
		got := conditions.Classify(code)
		assert.True(t, valid[got], "code %d returned %q", code, got)

		if want, ok := listed[code]; ok {
			assert.Equal(t, want, got, "code %d", code)
		} else {
			assert.Equal(t, conditions.Clear, got, "fallback for code %d", code)
		}
	}
}
