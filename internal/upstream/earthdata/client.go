// Package earthdata provides the bearer-token client for the NASA Earthdata
// gridded archives: the GEOS-S2S sub-seasonal forecast, the MERRA-2
// reanalysis, and the GPM IMERG precipitation product. The archive mirrors
// serve per-day JSON grid subsets of the underlying collections.
//
// A missing token disables the whole package: every fetch short-circuits to
// ErrNoToken without a network call, and callers degrade to climatology.
package earthdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/provider/resilience"
)

const (
	// FeedName identifies this upstream feed.
	FeedName = "earthdata"

	// DefaultGESDISCBaseURL is the GES DISC archive base URL.
	DefaultGESDISCBaseURL = "https://goldsmr4.gesdisc.eosdis.nasa.gov/data"

	// DefaultGEOSBaseURL is the GMAO S2S data share base URL.
	DefaultGEOSBaseURL = "https://portal.nccs.nasa.gov/datashare/gmao/s2s"

	// DefaultIMERGBaseURL is the GPM archive base URL.
	DefaultIMERGBaseURL = "https://gpm1.gesdisc.eosdis.nasa.gov/data"
)

// ErrNoToken is returned when no Earthdata bearer token is configured.
var ErrNoToken = errors.New("earthdata token not configured")

// ClientConfig holds configuration for the Earthdata client.
type ClientConfig struct {
	// Token is the Earthdata bearer token. Empty disables all fetches.
	Token string

	// GESDISCBaseURL overrides the GES DISC archive base URL.
	GESDISCBaseURL string

	// GEOSBaseURL overrides the GMAO S2S data share base URL.
	GEOSBaseURL string

	// IMERGBaseURL overrides the GPM archive base URL.
	IMERGBaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client fetches gridded daily subsets from the Earthdata archives.
type Client struct {
	token          string
	gesdiscBaseURL string
	geosBaseURL    string
	imergBaseURL   string
	httpClient     *resilience.Client
	logger         zerolog.Logger
}

// NewClient creates a new Earthdata client.
func NewClient(cfg ClientConfig) *Client {
	gesdisc := cfg.GESDISCBaseURL
	if gesdisc == "" {
		gesdisc = DefaultGESDISCBaseURL
	}
	geos := cfg.GEOSBaseURL
	if geos == "" {
		geos = DefaultGEOSBaseURL
	}
	imerg := cfg.IMERGBaseURL
	if imerg == "" {
		imerg = DefaultIMERGBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		c := resilience.DefaultClientConfig(FeedName)
		c.Timeout = 20 * time.Second
		httpClient = resilience.NewClient(c)
	}

	return &Client{
		token:          cfg.Token,
		gesdiscBaseURL: gesdisc,
		geosBaseURL:    geos,
		imergBaseURL:   imerg,
		httpClient:     httpClient,
		logger:         cfg.Logger,
	}
}

// Name returns the feed name.
func (c *Client) Name() string {
	return FeedName
}

// HasToken reports whether a bearer token is configured.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// fetchDataset fetches and decodes one gridded daily subset.
func (c *Client) fetchDataset(ctx context.Context, url string) (*Dataset, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var ds Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return &ds, nil
}
