package display

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/minipadd/internal/config"
	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/rileyhilliard/minipadd/internal/monitor"
	"github.com/rileyhilliard/minipadd/internal/ui"
)

// textBarWidth is the width of the console progress bar in cells.
const textBarWidth = 30

// LinePrinter receives rendered lines one at a time.
type LinePrinter interface {
	PrintLine(line string) error
}

// WriterPrinter prints each line to W followed by a newline.
type WriterPrinter struct {
	W io.Writer
}

func (p WriterPrinter) PrintLine(line string) error {
	_, err := fmt.Fprintln(p.W, line)
	return err
}

// TextRenderer is the console variant of the dashboard.
type TextRenderer struct {
	out      LinePrinter
	theme    *ui.Theme
	settings *config.Settings
	numbers  *Numbers
	now      func() time.Time
}

// NewTextRenderer creates a console renderer for settings.
func NewTextRenderer(out LinePrinter, theme *ui.Theme, settings *config.Settings) (*TextRenderer, error) {
	numbers, err := NewNumbers(settings.Locale)
	if err != nil {
		return nil, err
	}
	return &TextRenderer{
		out:      out,
		theme:    theme,
		settings: settings,
		numbers:  numbers,
		now:      time.Now,
	}, nil
}

// Render prints the configuration block followed by the dashboard.
func (r *TextRenderer) Render(ctx context.Context, snap monitor.Snapshot) error {
	for _, line := range r.Lines(snap) {
		if err := r.out.PrintLine(line); err != nil {
			return errors.WrapWithCode(err, errors.ErrDisplay, "Failed to write dashboard output", "")
		}
	}
	return nil
}

// Lines returns the rendered output for snap.
func (r *TextRenderer) Lines(snap monitor.Snapshot) []string {
	t := r.theme
	s := r.settings
	h := snap.Host
	rs := snap.Remote

	return []string{
		t.Muted.Render(fmt.Sprintf("── minipadd %s ──", snap.Taken.Format(time.DateTime))),
		t.Label.Render("config") + t.Muted.Render(fmt.Sprintf(
			"api=%s period=%ds color=%s flip=%t rotation=%d fps=%d headless=%t",
			s.APIHost(), s.RefreshPeriod, s.ScreenColor, s.ScreenFlip,
			s.ScreenRotation, s.ScreenTargetFPS, s.Headless)),
		t.Label.Render("host") + t.Value.Render(h.Hostname+" - "+h.IP) +
			t.Muted.Render("  up "+FormatUptime(h.Uptime)),
		t.Label.Render("cpu") + t.Value.Render(fmt.Sprintf("%d°C  %.1f%%  load %.2f %.2f %.2f",
			h.CPUTemp, h.CPUUsage, h.Load[0], h.Load[1], h.Load[2])),
		t.Label.Render("status") + t.Status(rs.Status) +
			t.Muted.Render("  gravity "+r.gravityAge(rs.GravityLastUpdated)),
		t.Label.Render("blocking") + t.Accent.Render(r.numbers.Int(rs.DomainsBeingBlocked)) +
			t.Value.Render(" domains"),
		t.Label.Render("piholed") + t.Accent.Render(r.numbers.Int(rs.AdsBlockedToday)) +
			t.Value.Render(" of ") + t.Accent.Render(r.numbers.Int(rs.DNSQueriesToday)) +
			t.Value.Render(" "+FormatPercent(rs.AdsPercentageToday)),
		t.Label.Render("") + t.Bar(rs.AdsPercentageToday, textBarWidth),
		t.Label.Render("clients") + t.Value.Render(fmt.Sprintf("%s active, %s seen",
			r.numbers.Int(rs.UniqueClients), r.numbers.Int(rs.ClientsEverSeen))),
	}
}

func (r *TextRenderer) gravityAge(updated time.Time) string {
	if updated.IsZero() {
		return "never updated"
	}
	return "updated " + humanize.RelTime(updated, r.now(), "ago", "from now")
}
