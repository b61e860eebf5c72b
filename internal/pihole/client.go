package pihole

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rileyhilliard/minipadd/internal/errors"
)

// APIPath is the legacy PHP endpoint that serves the summary.
const APIPath = "/admin/api.php"

// maxBody caps how much of a response we are willing to read.
const maxBody = 1 << 20

// Client talks to the Pi-hole web API on one host.
type Client struct {
	host string
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient returns a client for host, given as "host:port".
func NewClient(host string, opts ...Option) *Client {
	c := &Client{host: host, http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SummaryURL builds the request URL for the given token.
func (c *Client) SummaryURL(token string) string {
	q := url.Values{}
	q.Set("summary", "true")
	q.Set("auth", token)

	u := url.URL{
		Scheme:   "http",
		Host:     c.host,
		Path:     APIPath,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Summary fetches the current counters. There are no retries; a failed
// request is reported to the caller as a NETWORK error.
func (c *Client) Summary(ctx context.Context, token string) (Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SummaryURL(token), nil)
	if err != nil {
		return Summary{}, errors.Wrap(err, "Failed to build Pi-hole API request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Summary{}, errors.WrapWithCode(err, errors.ErrNetwork,
			"Pi-hole API at "+c.host+" is unreachable",
			"Check PIHOLE_HOST and PIHOLE_PORT, and that pihole-FTL and the web server are running")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Summary{}, errors.New(errors.ErrNetwork,
			fmt.Sprintf("Pi-hole API returned %s", resp.Status),
			"Check that the web interface is enabled on "+c.host)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Summary{}, errors.Wrap(err, "Failed to read Pi-hole API response")
	}

	s, err := ParseSummary(body)
	if err != nil {
		return Summary{}, errors.WrapWithCode(err, errors.ErrNetwork,
			"Pi-hole API returned a malformed summary",
			"An API token that is wrong for this host can produce an unexpected body; check WEBPASSWORD")
	}
	return s, nil
}
