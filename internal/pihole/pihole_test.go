package pihole

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSetupVars(t *testing.T) {
	dir := t.TempDir()
	content := strings.Join([]string{
		"PIHOLE_INTERFACE=wlan0",
		"IPV4_ADDRESS=192.168.1.2/24",
		"WEBPASSWORD=5e884898da28047151d0e56f8dc62927",
		"BLOCKING_ENABLED=true",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, SetupVarsFile), []byte(content), 0o600))

	vars, err := ResolveSetupVars(dir)
	require.NoError(t, err)
	assert.Equal(t, "wlan0", vars.Interface)
	assert.Equal(t, "5e884898da28047151d0e56f8dc62927", vars.Token)
}

func TestResolveSetupVars_MissingKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SetupVarsFile), []byte("DNSMASQ_LISTENING=local\n"), 0o600))

	vars, err := ResolveSetupVars(dir)
	require.NoError(t, err)
	assert.Empty(t, vars.Interface)
	assert.Empty(t, vars.Token)
}

func TestResolveSetupVars_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := "PIHOLE_INTERFACE=eth0\nthis is not a pair\nWEBPASSWORD=tok\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SetupVarsFile), []byte(content), 0o600))

	vars, err := ResolveSetupVars(dir)
	require.NoError(t, err)
	assert.Equal(t, "eth0", vars.Interface)
	assert.Equal(t, "tok", vars.Token)
}

func TestResolveSetupVars_Unreadable(t *testing.T) {
	_, err := ResolveSetupVars(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCredentials))
	assert.Contains(t, err.Error(), SetupVarsFile)
}

func TestParseSummary(t *testing.T) {
	body := `{
		"domains_being_blocked": "1,234,567",
		"dns_queries_today": 5000,
		"ads_blocked_today": "1,250",
		"ads_percentage_today": 25,
		"unique_clients": "7",
		"status": "enabled",
		"gravity_last_updated": {"file_exists": true, "absolute": 1700000000}
	}`

	s, err := ParseSummary([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, int64(1234567), s.DomainsBeingBlocked)
	assert.Equal(t, int64(5000), s.DNSQueriesToday)
	assert.Equal(t, int64(1250), s.AdsBlockedToday)
	assert.InDelta(t, 0.25, s.AdsPercentageToday, 1e-9)
	assert.Equal(t, int64(7), s.UniqueClients)
	assert.Equal(t, "enabled", s.Status)
	assert.Equal(t, time.Unix(1700000000, 0), s.GravityLastUpdated)
}

func TestParseSummary_Defaults(t *testing.T) {
	s, err := ParseSummary([]byte(`{}`))
	require.NoError(t, err)

	assert.Zero(t, s.DomainsBeingBlocked)
	assert.Zero(t, s.DNSQueriesToday)
	assert.Zero(t, s.AdsBlockedToday)
	assert.Zero(t, s.AdsPercentageToday)
	assert.Equal(t, StatusDisabled, s.Status)
	assert.True(t, s.GravityLastUpdated.IsZero())
}

func TestParseSummary_PercentageForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `12.5`, 0.125},
		{"string", `"12.5"`, 0.125},
		{"whole", `100`, 1},
		{"zero", `0`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSummary([]byte(`{"ads_percentage_today": ` + tt.raw + `}`))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, s.AdsPercentageToday, 1e-9)
		})
	}
}

func TestParseSummary_Malformed(t *testing.T) {
	_, err := ParseSummary([]byte(`{"dns_queries_today": "lots"}`))
	assert.Error(t, err)

	_, err = ParseSummary([]byte(`<html>`))
	assert.Error(t, err)
}

func TestClientSummary(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, APIPath, r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"domains_being_blocked": 100, "dns_queries_today": 40, "ads_blocked_today": 10, "ads_percentage_today": 25.0, "status": "enabled"}`))
	}))
	defer srv.Close()

	c := NewClient(strings.TrimPrefix(srv.URL, "http://"))
	s, err := c.Summary(context.Background(), "secret")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "summary=true")
	assert.Contains(t, gotQuery, "auth=secret")
	assert.Equal(t, int64(100), s.DomainsBeingBlocked)
	assert.Equal(t, int64(40), s.DNSQueriesToday)
	assert.InDelta(t, 0.25, s.AdsPercentageToday, 1e-9)
}

func TestClientSummary_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(strings.TrimPrefix(srv.URL, "http://"))
	_, err := c.Summary(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNetwork))
	assert.Contains(t, err.Error(), "403")
}

func TestClientSummary_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(strings.TrimPrefix(srv.URL, "http://"))
	_, err := c.Summary(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNetwork))
}

func TestClientSummary_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	_, err := NewClient(host).Summary(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNetwork))
}

func TestSummaryURL(t *testing.T) {
	c := NewClient("pi.hole:8080")
	assert.Equal(t, "http://pi.hole:8080/admin/api.php?auth=t%26k&summary=true", c.SummaryURL("t&k"))
}
