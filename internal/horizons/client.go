package horizons

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// VectorFetcher resolves a Horizons COMMAND id and a time window into a
// heliocentric position. Implemented by *Client; stub implementations are
// used in tests.
type VectorFetcher interface {
	FetchVector(ctx context.Context, command string, start, stop time.Time) (Vector3, error)
}

// Ensure Client implements VectorFetcher at compile time.
var _ VectorFetcher = (*Client)(nil)

// Client talks to the JPL Horizons API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://ssd.jpl.nasa.gov/api/horizons.api"
	defaultUserAgent = "orrery/0.1"
	requestTimeout   = 10 * time.Second

	// Horizons expects quoted local-format timestamps.
	timeLayout = "2006-Jan-02 15:04:05"
)

// NewClient builds a Client for the given API base URL; empty selects the
// public JPL endpoint.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchVector requests a single heliocentric state vector for the body
// identified by command, sampled inside the [start, stop) window.
func (c *Client) FetchVector(ctx context.Context, command string, start, stop time.Time) (Vector3, error) {
	if c == nil {
		return Vector3{}, fmt.Errorf("client is nil")
	}

	reqURL := *c.baseURL
	reqURL.RawQuery = vectorQuery(command, start, stop).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Vector3{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Vector3{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Vector3{}, fmt.Errorf("horizons returned status %d", resp.StatusCode)
	}

	var payload envelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Vector3{}, fmt.Errorf("decode response: %w", err)
	}
	if payload.Error != "" {
		return Vector3{}, fmt.Errorf("horizons error: %s", payload.Error)
	}

	v, err := parseVectorTable(payload.Result, command)
	if err != nil {
		return Vector3{}, err
	}
	return v, nil
}

// vectorQuery builds the query string for a single-body vector ephemeris:
// heliocentric center, ecliptic reference plane, AU units, CSV rows.
func vectorQuery(command string, start, stop time.Time) url.Values {
	values := url.Values{}
	values.Set("format", "json")
	values.Set("MAKE_EPHEM", "YES")
	values.Set("OBJ_DATA", "NO")
	values.Set("EPHEM_TYPE", "VECTORS")

	values.Set("COMMAND", command)
	values.Set("CENTER", "500@10")
	values.Set("REF_PLANE", "ECLIPTIC")
	values.Set("REF_SYSTEM", "ICRF")
	values.Set("OUT_UNITS", "AU-D")
	values.Set("CSV_FORMAT", "YES")
	values.Set("VEC_TABLE", "1")
	values.Set("TIME_TYPE", "UT")

	values.Set("START_TIME", "'"+start.UTC().Format(timeLayout)+"'")
	values.Set("STOP_TIME", "'"+stop.UTC().Format(timeLayout)+"'")
	values.Set("STEP_SIZE", "'1 m'")
	return values
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse horizons url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
