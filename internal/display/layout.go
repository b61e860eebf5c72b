package display

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	"github.com/rileyhilliard/minipadd/internal/ui"
)

// Inky pHAT panel geometry and the fixed dashboard layout.
const (
	PanelWidth  = 212
	PanelHeight = 104

	MarginH   = 2
	MarginV   = 2
	LineH     = 13
	BarHeight = 10
	BarBorder = 1
)

// LineY returns the top of text line n, counting from 0.
func LineY(n int) int {
	return MarginV + n*(LineH+MarginV)
}

// ProgressBar returns the filled part of a bar drawn in outer with a border
// of the given thickness. fraction is clamped to [0,1]; the fill width is
// rounded to the nearest pixel, so 0 yields an empty rectangle and 1 spans
// the full width inside the border.
func ProgressBar(outer image.Rectangle, border int, fraction float64) image.Rectangle {
	inner := outer.Inset(border)
	w := int(math.Round(float64(inner.Dx()) * ui.ClampFraction(fraction)))
	inner.Max.X = inner.Min.X + w
	return inner
}

// FormatUptime renders d as "{d}d {h}h {m}m". Leading zero components are
// dropped; minutes are always shown.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs / 60) % 60

	parts := make([]string, 0, 3)
	if days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days != 0 || hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", mins))
	return strings.Join(parts, " ")
}

// FormatPercent renders a fraction as a percentage with two decimals.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}
