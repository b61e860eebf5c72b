package display

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/rileyhilliard/minipadd/internal/ui"
)

// halfBlock draws the upper pixel in the foreground and the lower one in the
// background, so one terminal row holds two pixel rows.
const halfBlock = "▀"

// MockDevice emulates the panel in a terminal.
type MockDevice struct {
	in       io.Reader
	out      io.Writer
	bounds   image.Rectangle
	renderer *lipgloss.Renderer

	mu    sync.Mutex
	frame string
	shown int
}

// NewMockDevice creates an emulated pHAT printing to out. in is only read by
// WaitClose.
func NewMockDevice(in io.Reader, out io.Writer) *MockDevice {
	return &MockDevice{
		in:       in,
		out:      out,
		bounds:   image.Rect(0, 0, PanelWidth, PanelHeight),
		renderer: lipgloss.NewRenderer(out),
	}
}

func (d *MockDevice) Bounds() image.Rectangle {
	return d.bounds
}

// Show prints img as half-block cells.
func (d *MockDevice) Show(img image.Image) error {
	s := HalfBlocks(d.renderer, img)

	d.mu.Lock()
	d.frame = s
	d.shown++
	d.mu.Unlock()

	_, err := fmt.Fprintln(d.out, s)
	return err
}

// Frame returns the last frame as printed.
func (d *MockDevice) Frame() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// Shown returns how many frames have been pushed.
func (d *MockDevice) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

func (d *MockDevice) Close() error {
	return nil
}

// WaitClose keeps the last frame on screen until the user closes the viewer
// or ctx is done.
func (d *MockDevice) WaitClose(ctx context.Context) error {
	p := tea.NewProgram(
		newViewerModel(d.Frame()),
		tea.WithContext(ctx),
		tea.WithInput(d.in),
		tea.WithOutput(d.out),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrDisplay, "Display emulator failed", "")
	}
	return nil
}

// HalfBlocks renders img into terminal rows of half-block cells, one row per
// two pixel rows. Runs of identical cells share one style.
func HalfBlocks(r *lipgloss.Renderer, img image.Image) string {
	b := img.Bounds()
	rows := make([]string, 0, (b.Dy()+1)/2)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var row strings.Builder
		runStart := b.Min.X
		var runTop, runBottom string

		flush := func(end int) {
			if end <= runStart {
				return
			}
			style := r.NewStyle().
				Foreground(lipgloss.Color(runTop)).
				Background(lipgloss.Color(runBottom))
			row.WriteString(style.Render(strings.Repeat(halfBlock, end-runStart)))
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			top := hexColor(img.At(x, y))
			bottom := hexColor(Black)
			if y+1 < b.Max.Y {
				bottom = hexColor(img.At(x, y+1))
			}
			if x == b.Min.X {
				runTop, runBottom = top, bottom
				continue
			}
			if top != runTop || bottom != runBottom {
				flush(x)
				runStart, runTop, runBottom = x, top, bottom
			}
		}
		flush(b.Max.X)
		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// viewerKeyMap defines key bindings for the emulator window.
type viewerKeyMap struct {
	Close key.Binding
}

var viewerKeys = viewerKeyMap{
	Close: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "close"),
	),
}

// viewerModel shows a fixed frame until closed.
type viewerModel struct {
	frame  string
	closed bool
}

func newViewerModel(frame string) viewerModel {
	return viewerModel{frame: frame}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, viewerKeys.Close) {
		m.closed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m viewerModel) View() string {
	if m.closed {
		return ""
	}
	help := viewerKeys.Close.Help()
	return m.frame + "\n\n" + ui.MutedStyle.Render(help.Key+" "+help.Desc)
}
