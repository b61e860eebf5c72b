package cli

import (
	"context"
	"io"
	"time"

	"github.com/rileyhilliard/minipadd/internal/config"
	"github.com/rileyhilliard/minipadd/internal/display"
	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/rileyhilliard/minipadd/internal/monitor"
	"github.com/rileyhilliard/minipadd/internal/scheduler"
	"github.com/rileyhilliard/minipadd/internal/ui"
	"gopkg.in/yaml.v3"
)

type consoleOptions struct {
	continueOnError bool
	yaml            bool
	json            bool
	once            bool
}

// consoleCommand runs the terminal variant.
func consoleCommand(ctx context.Context, out io.Writer, opts consoleOptions) error {
	a, err := loadApp(config.VariantTerminal)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	renderer, err := consoleRenderer(a.settings, out, opts)
	if err != nil {
		return err
	}

	dash, err := a.dashboard(renderer)
	if err != nil {
		return err
	}

	if opts.once {
		return dash.Cycle(ctx)
	}

	s := scheduler.New(a.settings.Period(), a.log.Named("scheduler"))
	s.ContinueOnError = opts.continueOnError
	return s.Run(ctx, dash.Cycle)
}

func consoleRenderer(settings *config.Settings, out io.Writer, opts consoleOptions) (monitor.Renderer, error) {
	switch {
	case opts.json:
		return jsonRenderer{w: out}, nil
	case opts.yaml:
		return newYAMLRenderer(out), nil
	}

	plain := settings.Headless || noColorFlag || !isTerminal(out)
	theme := ui.NewTheme(out, ui.PanelColor(settings.ScreenColor), plain)
	r, err := display.NewTextRenderer(display.WriterPrinter{W: out}, theme, settings)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// snapshotDoc is the machine-readable form of a snapshot.
type snapshotDoc struct {
	Taken time.Time `yaml:"taken" json:"taken"`
	Host  hostDoc   `yaml:"host" json:"host"`
	Stats statsDoc  `yaml:"pihole" json:"pihole"`
}

type hostDoc struct {
	Hostname      string     `yaml:"hostname" json:"hostname"`
	IP            string     `yaml:"ip" json:"ip"`
	UptimeSeconds int64      `yaml:"uptime_seconds" json:"uptime_seconds"`
	CPUTemp       int        `yaml:"cpu_temp" json:"cpu_temp"`
	CPUUsage      float64    `yaml:"cpu_usage" json:"cpu_usage"`
	Load          [3]float64 `yaml:"load,flow" json:"load"`
}

type statsDoc struct {
	Status               string     `yaml:"status" json:"status"`
	DomainsBeingBlocked  int64      `yaml:"domains_being_blocked" json:"domains_being_blocked"`
	DNSQueriesToday      int64      `yaml:"dns_queries_today" json:"dns_queries_today"`
	AdsBlockedToday      int64      `yaml:"ads_blocked_today" json:"ads_blocked_today"`
	AdsPercentageToday   float64    `yaml:"ads_percentage_today" json:"ads_percentage_today"`
	UniqueDomains        int64      `yaml:"unique_domains" json:"unique_domains"`
	QueriesForwarded     int64      `yaml:"queries_forwarded" json:"queries_forwarded"`
	QueriesCached        int64      `yaml:"queries_cached" json:"queries_cached"`
	ClientsEverSeen      int64      `yaml:"clients_ever_seen" json:"clients_ever_seen"`
	UniqueClients        int64      `yaml:"unique_clients" json:"unique_clients"`
	DNSQueriesAllTypes   int64      `yaml:"dns_queries_all_types" json:"dns_queries_all_types"`
	DNSQueriesAllReplies int64      `yaml:"dns_queries_all_replies" json:"dns_queries_all_replies"`
	GravityLastUpdated   *time.Time `yaml:"gravity_last_updated,omitempty" json:"gravity_last_updated,omitempty"`
}

func newSnapshotDoc(s monitor.Snapshot) snapshotDoc {
	r := s.Remote
	doc := snapshotDoc{
		Taken: s.Taken,
		Host: hostDoc{
			Hostname:      s.Host.Hostname,
			IP:            s.Host.IP,
			UptimeSeconds: int64(s.Host.Uptime / time.Second),
			CPUTemp:       s.Host.CPUTemp,
			CPUUsage:      s.Host.CPUUsage,
			Load:          s.Host.Load,
		},
		Stats: statsDoc{
			Status:               r.Status,
			DomainsBeingBlocked:  r.DomainsBeingBlocked,
			DNSQueriesToday:      r.DNSQueriesToday,
			AdsBlockedToday:      r.AdsBlockedToday,
			AdsPercentageToday:   r.AdsPercentageToday,
			UniqueDomains:        r.UniqueDomains,
			QueriesForwarded:     r.QueriesForwarded,
			QueriesCached:        r.QueriesCached,
			ClientsEverSeen:      r.ClientsEverSeen,
			UniqueClients:        r.UniqueClients,
			DNSQueriesAllTypes:   r.DNSQueriesAllTypes,
			DNSQueriesAllReplies: r.DNSQueriesAllReplies,
		},
	}
	if !r.GravityLastUpdated.IsZero() {
		t := r.GravityLastUpdated
		doc.Stats.GravityLastUpdated = &t
	}
	return doc
}

// yamlRenderer writes one YAML document per snapshot. All documents go
// through one encoder so the stream carries "---" separators.
type yamlRenderer struct {
	enc *yaml.Encoder
}

func newYAMLRenderer(w io.Writer) *yamlRenderer {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &yamlRenderer{enc: enc}
}

func (r *yamlRenderer) Render(_ context.Context, snap monitor.Snapshot) error {
	if err := r.enc.Encode(newSnapshotDoc(snap)); err != nil {
		return errors.WrapWithCode(err, errors.ErrDisplay, "Failed to write YAML snapshot", "")
	}
	return nil
}

// jsonRenderer writes one JSON envelope per snapshot.
type jsonRenderer struct {
	w io.Writer
}

func (r jsonRenderer) Render(_ context.Context, snap monitor.Snapshot) error {
	if err := WriteJSONSuccess(r.w, newSnapshotDoc(snap)); err != nil {
		return errors.WrapWithCode(err, errors.ErrDisplay, "Failed to write JSON snapshot", "")
	}
	return nil
}
