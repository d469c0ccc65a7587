package stats

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		filled  int
	}{
		{name: "zero_percent", percent: 0, width: 21, filled: 0},
		{name: "full_percent", percent: 100, width: 21, filled: 21},
		{name: "half_rounds_up", percent: 50, width: 21, filled: 11}, // 10.5 rounds half up
		{name: "quarter", percent: 25, width: 20, filled: 5},
		{name: "small_fraction_rounds_down", percent: 1, width: 21, filled: 0}, // 0.21
		{name: "rounds_to_one", percent: 3, width: 21, filled: 1},              // 0.63
		{name: "negative_clamped", percent: -5, width: 21, filled: 0},
		{name: "overflow_clamped", percent: 150, width: 21, filled: 21},
		{name: "width_one", percent: 49, width: 1, filled: 0},
		{name: "width_one_rounds_up", percent: 50, width: 1, filled: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderBar(tt.percent, tt.width)
			assert.Equal(t, tt.width, utf8.RuneCountInString(bar))
			assert.Equal(t, strings.Repeat("█", tt.filled)+strings.Repeat("░", tt.width-tt.filled), bar)
		})
	}
}

func TestRenderBarNeverExceedsWidth(t *testing.T) {
	splits := []Buckets{
		{Morning: 1, Daytime: 0, Evening: 0, Night: 0},
		{Morning: 1, Daytime: 1, Evening: 1, Night: 1},
		{Morning: 3, Daytime: 5, Evening: 7, Night: 11},
		{Morning: 0, Daytime: 0, Evening: 0, Night: 997},
		{Morning: 33, Daytime: 33, Evening: 33, Night: 1},
	}

	for _, b := range splits {
		t.Run(fmt.Sprintf("%d_%d_%d_%d", b.Morning, b.Daytime, b.Evening, b.Night), func(t *testing.T) {
			total := b.Total()
			for _, count := range []int{b.Morning, b.Daytime, b.Evening, b.Night} {
				percent := float64(count) / float64(total) * 100
				bar := RenderBar(percent, BarWidth)
				assert.Equal(t, BarWidth, utf8.RuneCountInString(bar))
				assert.LessOrEqual(t, strings.Count(bar, "█"), BarWidth)
			}
		})
	}
}
