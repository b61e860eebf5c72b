package monitor

import (
	"context"

	"github.com/rileyhilliard/minipadd/internal/logger"
)

// Renderer pushes a snapshot to a display.
type Renderer interface {
	Render(ctx context.Context, snap Snapshot) error
}

// Dashboard is the per-cycle unit of work: collect, then render.
type Dashboard struct {
	collector *Collector
	renderer  Renderer
	log       logger.Logger
}

// NewDashboard wires a collector to a renderer.
func NewDashboard(collector *Collector, renderer Renderer, log logger.Logger) *Dashboard {
	if log == nil {
		log = logger.Noop()
	}
	return &Dashboard{collector: collector, renderer: renderer, log: log}
}

// Cycle collects a snapshot and renders it. A failed fetch skips the render.
// Fetching honors ctx; once a snapshot is in hand and ctx is still live the
// render runs to completion even if ctx is cancelled meanwhile.
func (d *Dashboard) Cycle(ctx context.Context) error {
	snap, err := d.collector.Collect(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d.log.Debug("collected: host=%s ip=%s blocked=%d/%d",
		snap.Host.Hostname, snap.Host.IP, snap.Remote.AdsBlockedToday, snap.Remote.DNSQueriesToday)

	return d.renderer.Render(context.WithoutCancel(ctx), snap)
}
