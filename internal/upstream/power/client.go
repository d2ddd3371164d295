// Package power provides a client for the NASA POWER daily point API, the
// climatology source that backs every hazard when the gridded datasets are
// unavailable.
package power

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/provider/resilience"
	"github.com/climasphere/climasphere/internal/reading"
)

const (
	// FeedName identifies this upstream feed.
	FeedName = "power"

	// DefaultBaseURL is the NASA POWER API base URL.
	DefaultBaseURL = "https://power.larc.nasa.gov/api"

	// DefaultCommunity is the POWER user community parameter.
	DefaultCommunity = "RE"
)

// ClientConfig holds configuration for the POWER client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to the NASA POWER API).
	BaseURL string

	// Community is the POWER community parameter (optional, defaults to RE).
	Community string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a NASA POWER daily point API client.
type Client struct {
	baseURL    string
	community  string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new POWER client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	community := cfg.Community
	if community == "" {
		community = DefaultCommunity
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		c := resilience.DefaultClientConfig(FeedName)
		c.Timeout = 2 * time.Second
		httpClient = resilience.NewClient(c)
	}

	return &Client{
		baseURL:    baseURL,
		community:  community,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the feed name.
func (c *Client) Name() string {
	return FeedName
}

// ComfortDaily fetches the climatology variables used by the comfort index.
func (c *Client) ComfortDaily(ctx context.Context, lat, lon float64, date time.Time) (ComfortDaily, error) {
	vars, err := c.daily(ctx, lat, lon, date, []string{"T2M_MAX", "T2M_MIN", "RH2M", "PRECTOTCORR"})
	if err != nil {
		return ComfortDaily{}, err
	}
	return ComfortDaily{
		TMax:   vars["T2M_MAX"],
		TMin:   vars["T2M_MIN"],
		RH:     vars["RH2M"],
		Precip: vars["PRECTOTCORR"],
	}, nil
}

// FireDaily fetches the variables used by the bushfire ladder.
func (c *Client) FireDaily(ctx context.Context, lat, lon float64, date time.Time) (FireDaily, error) {
	vars, err := c.daily(ctx, lat, lon, date, []string{"T2M", "RH2M", "WS10M", "PRECTOT"})
	if err != nil {
		return FireDaily{}, err
	}
	return FireDaily{
		Temp:     vars["T2M"],
		Humidity: vars["RH2M"],
		Wind:     vars["WS10M"],
		Precip:   vars["PRECTOT"],
	}, nil
}

// CycloneDaily fetches the variables used by the cyclone heuristic.
// Surface pressure prefers PS over PSL; POWER sometimes reports pressure in
// kPa, so values under 200 are converted to hPa.
func (c *Client) CycloneDaily(ctx context.Context, lat, lon float64, date time.Time) (CycloneDaily, error) {
	vars, err := c.daily(ctx, lat, lon, date, []string{"T2M_MAX", "RH2M", "PRECTOTCORR", "WS10M", "WS2M", "PS", "PSL"})
	if err != nil {
		return CycloneDaily{}, err
	}

	pressure := vars["PS"].Or(vars["PSL"]).Map(func(v float64) float64 {
		if v < 200 {
			return v * 10.0
		}
		return v
	})

	return CycloneDaily{
		TMax:     vars["T2M_MAX"],
		RH:       vars["RH2M"],
		Precip:   vars["PRECTOTCORR"],
		Wind10M:  vars["WS10M"],
		Wind2M:   vars["WS2M"],
		Pressure: pressure,
	}, nil
}

// dailyResponse mirrors the POWER daily point payload:
// {"properties":{"parameter":{"T2M":{"20240101":25.3}}}}.
type dailyResponse struct {
	Properties struct {
		Parameter map[string]map[string]*float64 `json:"parameter"`
	} `json:"properties"`
}

func (c *Client) daily(ctx context.Context, lat, lon float64, date time.Time, params []string) (map[string]reading.Value, error) {
	ymd := date.Format("20060102")
	url := fmt.Sprintf(
		"%s/temporal/daily/point?parameters=%s&community=%s&longitude=%v&latitude=%v&start=%s&end=%s&format=JSON",
		c.baseURL, strings.Join(params, ","), c.community, lon, lat, ymd, ymd)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	out := make(map[string]reading.Value, len(params))
	for _, name := range params {
		out[name] = reading.Absent()
		if byDate, ok := payload.Properties.Parameter[name]; ok {
			if v := byDate[ymd]; v != nil {
				out[name] = reading.Sanitize(*v)
			}
		}
	}
	return out, nil
}
