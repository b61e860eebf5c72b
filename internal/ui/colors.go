package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// MutedStyle is used for help lines and secondary text.
var MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

// PanelColor maps a SCREEN_COLOR name to the terminal color that stands in
// for the panel's accent ink.
func PanelColor(name string) lipgloss.Color {
	switch strings.ToLower(name) {
	case "red":
		return ColorError
	case "black":
		return ColorPrimary
	default:
		return ColorWarning
	}
}

// DisableColors switches the default renderer to plain ASCII output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
