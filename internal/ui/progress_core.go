package ui

import (
	"math"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ClampFraction clamps a fraction to the 0-1 range. NaN counts as 0.
func ClampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// CalculateBarCounts returns the number of filled and empty cells for a
// fraction in [0,1], rounded to the nearest cell.
func CalculateBarCounts(fraction float64, width int) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	filled = int(math.Round(ClampFraction(fraction) * float64(width)))
	empty = width - filled
	return
}
