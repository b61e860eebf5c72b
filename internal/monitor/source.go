package monitor

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// SystemSource answers the host queries the dashboard needs.
type SystemSource interface {
	Hostname(ctx context.Context) (string, error)
	Uptime(ctx context.Context) (time.Duration, error)
	Temperatures(ctx context.Context) ([]Sensor, error)
	CPUPercent(ctx context.Context) (float64, error)
	LoadAvg(ctx context.Context) ([3]float64, error)
	Interfaces(ctx context.Context) ([]Interface, error)
}

// LocalSource reads the machine minipadd runs on through gopsutil.
type LocalSource struct{}

// NewLocalSource returns a SystemSource for the local host.
func NewLocalSource() *LocalSource {
	return &LocalSource{}
}

// Hostname reads the host name from gopsutil's host info. Info also reads
// platform and virtualization details; failures there do not matter once
// the name itself was read.
func (s *LocalSource) Hostname(ctx context.Context) (string, error) {
	return hostnameOf(host.InfoWithContext(ctx))
}

func hostnameOf(info *host.InfoStat, err error) (string, error) {
	if info != nil && info.Hostname != "" {
		return info.Hostname, nil
	}
	if err == nil {
		err = stderrors.New("host info has no hostname")
	}
	return "", err
}

func (s *LocalSource) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// Temperatures returns whatever sensors could be read. gopsutil reports
// unreadable hwmon entries as warnings alongside the good ones, so an error
// only counts when nothing came back.
func (s *LocalSource) Temperatures(ctx context.Context) ([]Sensor, error) {
	stats, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(stats) == 0 {
		return nil, err
	}

	sensors := make([]Sensor, 0, len(stats))
	for _, st := range stats {
		sensors = append(sensors, Sensor{Key: st.SensorKey, Celsius: st.Temperature})
	}
	return sensors, nil
}

// CPUPercent returns overall usage since the previous call.
func (s *LocalSource) CPUPercent(ctx context.Context) (float64, error) {
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(pct) == 0 {
		return 0, nil
	}
	return pct[0], nil
}

func (s *LocalSource) LoadAvg(ctx context.Context) ([3]float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
}

func (s *LocalSource) Interfaces(ctx context.Context) ([]Interface, error) {
	stats, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	ifaces := make([]Interface, 0, len(stats))
	for _, st := range stats {
		iface := Interface{Name: st.Name}
		for _, a := range st.Addrs {
			iface.Addrs = append(iface.Addrs, a.Addr)
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}
