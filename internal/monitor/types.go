package monitor

import (
	"time"

	"github.com/rileyhilliard/minipadd/internal/pihole"
)

// HostStats contains the local system figures shown on the dashboard.
type HostStats struct {
	Hostname string
	IP       string
	Uptime   time.Duration
	CPUTemp  int
	CPUUsage float64
	Load     [3]float64
}

// Snapshot pairs the remote and host stats taken in one cycle.
type Snapshot struct {
	Remote pihole.Summary
	Host   HostStats
	Taken  time.Time
}

// Sensor is a single temperature reading.
type Sensor struct {
	Key     string
	Celsius float64
}

// Interface is a network interface and its addresses in CIDR form.
type Interface struct {
	Name  string
	Addrs []string
}
