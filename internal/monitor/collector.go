package monitor

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/rileyhilliard/minipadd/internal/pihole"
)

// ThermalSensor is the Raspberry Pi SoC sensor name.
const ThermalSensor = "cpu_thermal"

// RemoteSource fetches the Pi-hole summary.
type RemoteSource interface {
	Summary(ctx context.Context, token string) (pihole.Summary, error)
}

// Collector gathers one Snapshot from the host and the Pi-hole API.
type Collector struct {
	system SystemSource
	remote RemoteSource
	iface  string
	token  string
	now    func() time.Time
}

// NewCollector creates a collector reporting the address of iface and
// authenticating to the API with token.
func NewCollector(system SystemSource, remote RemoteSource, iface, token string) *Collector {
	return &Collector{
		system: system,
		remote: remote,
		iface:  iface,
		token:  token,
		now:    time.Now,
	}
}

// Interface returns the network interface whose address is reported.
func (c *Collector) Interface() string {
	return c.iface
}

// Collect fetches host stats, then the remote summary.
func (c *Collector) Collect(ctx context.Context) (Snapshot, error) {
	hs, err := c.Host(ctx, c.iface)
	if err != nil {
		return Snapshot{}, err
	}

	summary, err := c.remote.Summary(ctx, c.token)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Remote: summary, Host: hs, Taken: c.now()}, nil
}

// Host queries the local system. Temperature falls back to the first sensor,
// then to 0; the interface must exist and carry an IPv4 address.
func (c *Collector) Host(ctx context.Context, iface string) (HostStats, error) {
	var hs HostStats
	var err error

	if hs.Hostname, err = c.system.Hostname(ctx); err != nil {
		return HostStats{}, systemError(err, "Failed to read hostname")
	}

	uptime, err := c.system.Uptime(ctx)
	if err != nil {
		return HostStats{}, systemError(err, "Failed to read uptime")
	}
	hs.Uptime = uptime.Truncate(time.Second)

	sensors, err := c.system.Temperatures(ctx)
	if err != nil {
		return HostStats{}, systemError(err, "Failed to read temperature sensors")
	}
	hs.CPUTemp = cpuTemp(sensors)

	if hs.CPUUsage, err = c.system.CPUPercent(ctx); err != nil {
		return HostStats{}, systemError(err, "Failed to read CPU usage")
	}

	if hs.Load, err = c.system.LoadAvg(ctx); err != nil {
		return HostStats{}, systemError(err, "Failed to read load average")
	}

	ifaces, err := c.system.Interfaces(ctx)
	if err != nil {
		return HostStats{}, systemError(err, "Failed to list network interfaces")
	}
	ip, err := ipv4Of(ifaces, iface)
	if err != nil {
		return HostStats{}, err
	}
	hs.IP = ip

	return hs, nil
}

// cpuTemp picks the SoC sensor when present.
func cpuTemp(sensors []Sensor) int {
	for _, s := range sensors {
		if s.Key == ThermalSensor || strings.HasPrefix(s.Key, ThermalSensor+"_") {
			return int(s.Celsius)
		}
	}
	if len(sensors) > 0 {
		return int(sensors[0].Celsius)
	}
	return 0
}

func ipv4Of(ifaces []Interface, name string) (string, error) {
	for _, iface := range ifaces {
		if iface.Name != name {
			continue
		}
		for _, addr := range iface.Addrs {
			if ip := parseAddr(addr); ip != nil && ip.To4() != nil {
				return ip.To4().String(), nil
			}
		}
		return "", errors.New(errors.ErrSystem,
			"Interface "+name+" has no IPv4 address",
			"Check PIHOLE_INTERFACE in setupVars.conf")
	}
	return "", errors.New(errors.ErrSystem,
		"Interface "+name+" not found",
		"Check PIHOLE_INTERFACE in setupVars.conf")
}

// parseAddr accepts "a.b.c.d/n" or a bare address.
func parseAddr(addr string) net.IP {
	if ip, _, err := net.ParseCIDR(addr); err == nil {
		return ip
	}
	return net.ParseIP(addr)
}

func systemError(err error, msg string) error {
	return errors.WrapWithCode(err, errors.ErrSystem, msg, "")
}
