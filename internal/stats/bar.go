package stats

import (
	"math"
	"strings"
)

const (
	fillRune  = "█"
	emptyRune = "░"
)

// RenderBar draws a fixed-width bar whose filled length is percent/100 of
// width, rounded half up and clamped to [0, width].
func RenderBar(percent float64, width int) string {
	filled := int(math.Floor(percent/100*float64(width) + 0.5))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(fillRune, filled) + strings.Repeat(emptyRune, width-filled)
}
