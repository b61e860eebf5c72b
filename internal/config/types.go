package config

import (
	"net"
	"strconv"
	"time"
)

// Variant selects which deployment target a Settings value is built for.
// Each variant recognizes a slightly different set of fields.
type Variant int

const (
	// VariantInky is the e-ink (graphical) dashboard.
	VariantInky Variant = 1 << iota
	// VariantTerminal is the text/debug dashboard.
	VariantTerminal
)

// VariantAll matches every variant in the schema table.
const VariantAll = VariantInky | VariantTerminal

// String returns the variant name used in logs and the console header.
func (v Variant) String() string {
	switch v {
	case VariantInky:
		return "inky"
	case VariantTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Settings is the typed, validated configuration. It is built once by Load
// and passed by value afterwards; nothing mutates it after construction.
type Settings struct {
	Variant Variant

	ScreenFlip  bool
	ScreenMock  bool
	ScreenColor string

	PiholeHost    string
	PiholePort    int
	PiholeConfDir string

	// RefreshPeriod is in seconds.
	RefreshPeriod int
	Locale        string

	// Terminal variant only.
	Headless        bool
	ScreenRotation  int
	ScreenTargetFPS int
	PiholeToken     string

	LogLevel  string
	LogFormat string
}

// Period returns the refresh period as a duration.
func (s Settings) Period() time.Duration {
	return time.Duration(s.RefreshPeriod) * time.Second
}

// APIHost returns the host:port pair of the Pi-hole web server.
func (s Settings) APIHost() string {
	return net.JoinHostPort(s.PiholeHost, strconv.Itoa(s.PiholePort))
}

// SetupVarsPath returns the location of Pi-hole's own setup file.
func (s Settings) SetupVarsPath() string {
	return s.PiholeConfDir + "/setupVars.conf"
}
