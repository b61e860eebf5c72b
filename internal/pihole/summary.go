package pihole

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Summary is one snapshot of the FTL counters returned by api.php?summary.
// AdsPercentageToday is a fraction in [0,1] even though the API sends a percentage.
type Summary struct {
	DomainsBeingBlocked  int64
	DNSQueriesToday      int64
	AdsBlockedToday      int64
	AdsPercentageToday   float64
	UniqueDomains        int64
	QueriesForwarded     int64
	QueriesCached        int64
	ClientsEverSeen      int64
	UniqueClients        int64
	DNSQueriesAllTypes   int64
	DNSQueriesAllReplies int64
	Status               string
	GravityLastUpdated   time.Time
}

// StatusDisabled is reported when the API omits the status field.
const StatusDisabled = "disabled"

// summaryWire mirrors the JSON body. Every field is optional.
type summaryWire struct {
	DomainsBeingBlocked  flexNumber `json:"domains_being_blocked"`
	DNSQueriesToday      flexNumber `json:"dns_queries_today"`
	AdsBlockedToday      flexNumber `json:"ads_blocked_today"`
	AdsPercentageToday   flexNumber `json:"ads_percentage_today"`
	UniqueDomains        flexNumber `json:"unique_domains"`
	QueriesForwarded     flexNumber `json:"queries_forwarded"`
	QueriesCached        flexNumber `json:"queries_cached"`
	ClientsEverSeen      flexNumber `json:"clients_ever_seen"`
	UniqueClients        flexNumber `json:"unique_clients"`
	DNSQueriesAllTypes   flexNumber `json:"dns_queries_all_types"`
	DNSQueriesAllReplies flexNumber `json:"dns_queries_all_replies"`
	Status               *string    `json:"status"`
	GravityLastUpdated   struct {
		Absolute flexNumber `json:"absolute"`
	} `json:"gravity_last_updated"`
}

// ParseSummary decodes an api.php?summary response body.
func ParseSummary(body []byte) (Summary, error) {
	var w summaryWire
	if err := json.Unmarshal(body, &w); err != nil {
		return Summary{}, err
	}

	s := Summary{
		DomainsBeingBlocked:  w.DomainsBeingBlocked.Int(),
		DNSQueriesToday:      w.DNSQueriesToday.Int(),
		AdsBlockedToday:      w.AdsBlockedToday.Int(),
		AdsPercentageToday:   w.AdsPercentageToday.Float() / 100,
		UniqueDomains:        w.UniqueDomains.Int(),
		QueriesForwarded:     w.QueriesForwarded.Int(),
		QueriesCached:        w.QueriesCached.Int(),
		ClientsEverSeen:      w.ClientsEverSeen.Int(),
		UniqueClients:        w.UniqueClients.Int(),
		DNSQueriesAllTypes:   w.DNSQueriesAllTypes.Int(),
		DNSQueriesAllReplies: w.DNSQueriesAllReplies.Int(),
		Status:               StatusDisabled,
	}
	if w.Status != nil {
		s.Status = *w.Status
	}
	if ts := w.GravityLastUpdated.Absolute.Int(); ts > 0 {
		s.GravityLastUpdated = time.Unix(ts, 0)
	}
	return s, nil
}

// flexNumber accepts a JSON number, null, or a string holding a number with
// thousands separators ("1,234,567").
type flexNumber struct {
	v float64
	i int64
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = flexNumber{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	parsed, err := parseGrouped(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// parseGrouped strips thousands separators and parses the remainder.
// Integers keep full int64 precision; anything with a fraction goes through float.
func parseGrouped(raw string) (flexNumber, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if clean == "" {
		return flexNumber{}, nil
	}
	if i, err := strconv.ParseInt(clean, 10, 64); err == nil {
		return flexNumber{v: float64(i), i: i}, nil
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return flexNumber{}, fmt.Errorf("not a number: %q", raw)
	}
	return flexNumber{v: f, i: int64(f)}, nil
}

// Int returns the value truncated to an integer.
func (n flexNumber) Int() int64 { return n.i }

// Float returns the value as a float.
func (n flexNumber) Float() float64 { return n.v }
