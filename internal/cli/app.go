package cli

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rileyhilliard/minipadd/internal/config"
	"github.com/rileyhilliard/minipadd/internal/display"
	"github.com/rileyhilliard/minipadd/internal/logger"
	"github.com/rileyhilliard/minipadd/internal/monitor"
	"github.com/rileyhilliard/minipadd/internal/pihole"
	"golang.org/x/term"
)

// apiTimeout bounds a single summary request.
const apiTimeout = 30 * time.Second

// app holds what every command builds from the environment.
type app struct {
	settings *config.Settings
	log      *logger.ZapLogger
}

// loadApp reads settings for variant and sets up logging.
func loadApp(variant config.Variant) (*app, error) {
	source, err := config.EnvSource(envFileFlag, variant)
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(source, variant)
	if err != nil {
		return nil, err
	}

	level := settings.LogLevel
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	log := logger.New(logger.Config{
		Level:  level,
		Format: settings.LogFormat,
		Output: os.Stderr,
	})
	logger.SetDefault(log)

	log.Debug("settings: variant=%s api=%s period=%s confdir=%s",
		settings.Variant, settings.APIHost(), settings.Period(), settings.PiholeConfDir)
	return &app{settings: settings, log: log}, nil
}

// dashboard resolves credentials and wires a collector to renderer. A
// PIHOLE_TOKEN setting overrides WEBPASSWORD from setupVars.conf.
func (a *app) dashboard(renderer monitor.Renderer) (*monitor.Dashboard, error) {
	a.log.Debug("reading credentials from %s", a.settings.SetupVarsPath())
	vars, err := pihole.ResolveSetupVars(a.settings.PiholeConfDir)
	if err != nil {
		return nil, err
	}

	token := vars.Token
	if a.settings.PiholeToken != "" {
		token = a.settings.PiholeToken
	}
	if token == "" {
		a.log.Warn("no API token found; the summary may come back empty")
	}

	client := pihole.NewClient(a.settings.APIHost(),
		pihole.WithHTTPClient(&http.Client{Timeout: apiTimeout}))
	collector := monitor.NewCollector(monitor.NewLocalSource(), client, vars.Interface, token)

	a.log.Info("watching %s on interface %s", a.settings.APIHost(), vars.Interface)
	return monitor.NewDashboard(collector, renderer, a.log.Named("dashboard")), nil
}

// openDevice returns the emulator when SCREEN_MOCK is set, else the panel.
func (a *app) openDevice(in io.Reader, out io.Writer) (display.Device, error) {
	if a.settings.ScreenMock {
		a.log.Info("using display emulator")
		return display.NewMockDevice(in, out), nil
	}
	return display.OpenInky(a.settings.ScreenColor)
}

// frameRenderer opens the device and builds the raster renderer on it.
func (a *app) frameRenderer(in io.Reader, out io.Writer) (*display.FrameRenderer, display.Device, error) {
	dev, err := a.openDevice(in, out)
	if err != nil {
		return nil, nil, err
	}

	r, err := display.NewFrameRenderer(dev, display.FrameOptions{
		Color:  a.settings.ScreenColor,
		Flip:   a.settings.ScreenFlip,
		Locale: a.settings.Locale,
	})
	if err != nil {
		dev.Close()
		return nil, nil, err
	}
	return r, dev, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
