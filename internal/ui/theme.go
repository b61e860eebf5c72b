package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles for one output stream.
type Theme struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
}

// NewTheme builds styles bound to w. plain forces ASCII output regardless of
// what the terminal supports.
func NewTheme(w io.Writer, accent lipgloss.Color, plain bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Theme{
		Label:  r.NewStyle().Foreground(ColorSecondary).Width(9),
		Value:  r.NewStyle().Foreground(ColorPrimary),
		Accent: r.NewStyle().Foreground(accent).Bold(true),
		Muted:  r.NewStyle().Foreground(ColorMuted),
		Good:   r.NewStyle().Foreground(ColorSuccess),
		Bad:    r.NewStyle().Foreground(ColorError),
	}
}

// Status renders the blocking status with a symbol.
func (t *Theme) Status(status string) string {
	switch strings.ToLower(status) {
	case "enabled":
		return t.Good.Render(SymbolSuccess + " " + status)
	case "":
		return t.Muted.Render(SymbolPending + " unknown")
	default:
		return t.Bad.Render(SymbolFail + " " + status)
	}
}

// Bar renders a bracketed bar of width cells filled to fraction.
func (t *Theme) Bar(fraction float64, width int) string {
	filled, empty := CalculateBarCounts(fraction, width)
	if width <= 0 {
		return ""
	}
	return t.Muted.Render("[") +
		t.Accent.Render(strings.Repeat(string(BarFilled), filled)) +
		t.Muted.Render(strings.Repeat(string(BarEmpty), empty)+"]")
}
