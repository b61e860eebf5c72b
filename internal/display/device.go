package display

import (
	"image"
	"image/color"
	"strings"
)

// Device is a display that accepts whole frames.
type Device interface {
	Bounds() image.Rectangle
	Show(img image.Image) error
	Close() error
}

// Panel colors.
var (
	Black  = color.RGBA{0, 0, 0, 255}
	White  = color.RGBA{255, 255, 255, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
)

// Palette indexes used by rendered frames.
const (
	IndexBackground uint8 = iota
	IndexText
	IndexAccent
)

// NewPalette returns the frame palette for a panel color name. A black-only
// panel has no third ink, so its accent falls back to the text color.
func NewPalette(panelColor string) color.Palette {
	return color.Palette{Black, White, AccentColor(panelColor)}
}

// AccentColor maps SCREEN_COLOR to the ink used for highlighted values.
func AccentColor(panelColor string) color.Color {
	switch strings.ToLower(panelColor) {
	case "red":
		return Red
	case "black":
		return White
	default:
		return Yellow
	}
}
