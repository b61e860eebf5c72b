// Package monitor gathers the figures shown on the minipadd dashboard.
//
// A Collector combines two sources into a Snapshot:
//
//	SystemSource - local host queries (hostname, uptime, sensors, CPU, load,
//	               interfaces), implemented on gopsutil by LocalSource
//	RemoteSource - the Pi-hole summary API, implemented by pihole.Client
//
// Dashboard.Cycle is the unit of work driven by the scheduler: it collects a
// Snapshot and hands it to a Renderer. If either fetch fails nothing is
// rendered and the error is returned as-is.
package monitor
