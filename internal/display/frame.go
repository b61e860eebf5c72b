package display

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/rileyhilliard/minipadd/internal/monitor"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FrameOptions controls how frames are drawn.
type FrameOptions struct {
	Color  string
	Flip   bool
	Locale string
}

// FrameRenderer draws the dashboard layout into a paletted image and pushes
// it to a Device.
type FrameRenderer struct {
	dev     Device
	palette color.Palette
	flip    bool
	numbers *Numbers
	face    font.Face

	mu   sync.Mutex
	last *image.Paletted
}

// NewFrameRenderer creates a renderer for dev.
func NewFrameRenderer(dev Device, opts FrameOptions) (*FrameRenderer, error) {
	numbers, err := NewNumbers(opts.Locale)
	if err != nil {
		return nil, err
	}
	return &FrameRenderer{
		dev:     dev,
		palette: NewPalette(opts.Color),
		flip:    opts.Flip,
		numbers: numbers,
		face:    basicfont.Face7x13,
	}, nil
}

// Render draws snap and shows it. The frame is complete before the device
// sees it; a failed push leaves the previous frame on the panel.
func (r *FrameRenderer) Render(ctx context.Context, snap monitor.Snapshot) error {
	img := r.Frame(snap)
	if r.flip {
		img = Rotate180(img)
	}

	if err := r.dev.Show(img); err != nil {
		return errors.WrapWithCode(err, errors.ErrDisplay, "Failed to update display",
			"Check that SPI is enabled and the panel is seated, or set SCREEN_MOCK=true")
	}

	r.mu.Lock()
	r.last = img
	r.mu.Unlock()
	return nil
}

// Last returns the most recently shown frame, or nil.
func (r *FrameRenderer) Last() *image.Paletted {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Frame draws the layout for snap without touching the device.
func (r *FrameRenderer) Frame(snap monitor.Snapshot) *image.Paletted {
	bounds := r.dev.Bounds()
	img := image.NewPaletted(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), r.palette)
	width := img.Bounds().Dx()

	text := r.palette[IndexText]
	accent := r.palette[IndexAccent]

	// hostname and address, uptime in the top right corner
	y := LineY(0)
	r.drawText(img, MarginH, y, snap.Host.Hostname+" - "+snap.Host.IP, text)
	uptime := FormatUptime(snap.Host.Uptime)
	r.drawText(img, width-r.measure(uptime)-MarginH, y, uptime, text)

	r.drawSegments(img, MarginH, LineY(1), []segment{
		{"blocking:", text},
		{r.numbers.Int(snap.Remote.DomainsBeingBlocked), accent},
		{"domains", text},
	})

	r.drawSegments(img, MarginH, LineY(2), []segment{
		{"piholed:", text},
		{r.numbers.Int(snap.Remote.AdsBlockedToday), accent},
		{"of", text},
		{r.numbers.Int(snap.Remote.DNSQueriesToday), accent},
		{FormatPercent(snap.Remote.AdsPercentageToday), text},
	})

	barTop := LineY(3)
	outer := image.Rect(MarginH, barTop, width-MarginH, barTop+BarHeight)
	fill(img, outer, text)
	fill(img, outer.Inset(BarBorder), r.palette[IndexBackground])
	fill(img, ProgressBar(outer, BarBorder, snap.Remote.AdsPercentageToday), accent)

	return img
}

type segment struct {
	text string
	ink  color.Color
}

// drawSegments draws items left to right separated by one space.
func (r *FrameRenderer) drawSegments(img draw.Image, x, y int, items []segment) {
	for _, it := range items {
		r.drawText(img, x, y, it.text, it.ink)
		x += r.measure(it.text + " ")
	}
}

// drawText draws s with its top-left corner at (x, y).
func (r *FrameRenderer) drawText(img draw.Image, x, y int, s string, ink color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: r.face,
		Dot:  fixed.P(x, y+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (r *FrameRenderer) measure(s string) int {
	return font.MeasureString(r.face, s).Ceil()
}

func fill(img draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Rotate180 returns a copy of img turned upside down.
func Rotate180(img *image.Paletted) *image.Paletted {
	b := img.Bounds()
	out := image.NewPaletted(b, img.Palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetColorIndex(b.Max.X-1-(x-b.Min.X), b.Max.Y-1-(y-b.Min.Y), img.ColorIndexAt(x, y))
		}
	}
	return out
}
