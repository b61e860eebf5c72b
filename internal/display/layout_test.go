package display

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestProgressBar(t *testing.T) {
	outer := image.Rect(MarginH, LineY(3), PanelWidth-MarginH, LineY(3)+BarHeight)
	full := outer.Dx() - 2*BarBorder

	tests := []struct {
		name     string
		fraction float64
		width    int
	}{
		{"empty", 0, 0},
		{"half", 0.5, full / 2},
		{"full", 1, full},
		{"over", 1.7, full},
		{"negative", -0.3, 0},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := ProgressBar(outer, BarBorder, tt.fraction)
			assert.InDelta(t, tt.width, inner.Dx(), 1)
			assert.Equal(t, outer.Min.X+BarBorder, inner.Min.X)
			assert.Equal(t, outer.Min.Y+BarBorder, inner.Min.Y)
			assert.Equal(t, outer.Max.Y-BarBorder, inner.Max.Y)
		})
	}

	assert.True(t, ProgressBar(outer, BarBorder, 0).Empty())
}

func TestLineY(t *testing.T) {
	assert.Equal(t, 2, LineY(0))
	assert.Equal(t, 17, LineY(1))
	assert.Equal(t, 32, LineY(2))
	assert.Equal(t, 47, LineY(3))
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{59 * time.Second, "0m"},
		{5 * time.Minute, "5m"},
		{3*time.Hour + 5*time.Minute, "3h 5m"},
		{3 * time.Hour, "3h 0m"},
		{26*time.Hour + 3*time.Minute, "1d 2h 3m"},
		{48*time.Hour + 5*time.Minute, "2d 0h 5m"},
		{90061 * time.Second, "1d 1h 1m"},
		{-time.Minute, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.in))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "25.00%", FormatPercent(0.25))
	assert.Equal(t, "12.35%", FormatPercent(0.123456))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "100.00%", FormatPercent(1))
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en_US.UTF-8", language.MustParse("en-US")},
		{"de_DE@euro", language.MustParse("de-DE")},
		{"fr_FR", language.MustParse("fr-FR")},
		{"C", language.Und},
		{"POSIX", language.Und},
		{"", language.Und},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tag, err := ParseLocale(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
		})
	}

	_, err := ParseLocale("not a locale!")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestNumbersGrouping(t *testing.T) {
	en, err := NewNumbers("en_US.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", en.Int(1234567))
	assert.Equal(t, "999", en.Int(999))
	assert.Equal(t, "0", en.Int(0))

	de, err := NewNumbers("de_DE.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "1.234.567", de.Int(1234567))
}
