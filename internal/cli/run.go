package cli

import (
	"context"
	"io"

	"github.com/rileyhilliard/minipadd/internal/config"
	"github.com/rileyhilliard/minipadd/internal/display"
	"github.com/rileyhilliard/minipadd/internal/scheduler"
)

// runCommand refreshes the panel until ctx is cancelled.
func runCommand(ctx context.Context, in io.Reader, out io.Writer, continueOnError bool) error {
	a, err := loadApp(config.VariantInky)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	renderer, dev, err := a.frameRenderer(in, out)
	if err != nil {
		return err
	}
	defer dev.Close()

	dash, err := a.dashboard(renderer)
	if err != nil {
		return err
	}

	s := scheduler.New(a.settings.Period(), a.log.Named("scheduler"))
	s.ContinueOnError = continueOnError
	return s.Run(ctx, dash.Cycle)
}

// onceCommand draws a single frame. The emulator window is held open until
// the user closes it.
func onceCommand(ctx context.Context, in io.Reader, out io.Writer) error {
	a, err := loadApp(config.VariantInky)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	renderer, dev, err := a.frameRenderer(in, out)
	if err != nil {
		return err
	}
	defer dev.Close()

	dash, err := a.dashboard(renderer)
	if err != nil {
		return err
	}

	if err := dash.Cycle(ctx); err != nil {
		return err
	}

	if mock, ok := dev.(*display.MockDevice); ok {
		return mock.WaitClose(ctx)
	}
	return nil
}
