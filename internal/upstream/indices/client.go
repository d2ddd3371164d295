// Package indices fetches the two global climate drivers used by every
// hazard: the NOAA Oceanic Niño Index and the BoM Indian Ocean Dipole index.
// Both are tiny text resources; the current value is the last whitespace
// token of the last non-empty line.
package indices

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/provider/resilience"
	"github.com/climasphere/climasphere/internal/reading"
)

const (
	// FeedName identifies this upstream feed.
	FeedName = "indices"

	// DefaultONIURL is the NOAA ONI text resource.
	DefaultONIURL = "https://www.cpc.ncep.noaa.gov/data/indices/oni.ascii.txt"

	// DefaultIODURL is the BoM IOD text resource.
	DefaultIODURL = "https://www.bom.gov.au/climate/enso/indices/sstoi.dat"

	// StatusOK is the status reported alongside a numeric index value.
	StatusOK = "OK"

	// StatusUnavailable replaces the value when the feed cannot be read.
	StatusUnavailable = "Data temporarily unavailable"
)

// Index is one climate index: a value when the feed parsed, and a status
// string that callers surface in place of the number when it did not.
type Index struct {
	Value  reading.Value
	Status string
}

// Echo returns the wire representation: the numeric value when present,
// otherwise the status string.
func (ix Index) Echo() interface{} {
	if v, ok := ix.Value.Float(); ok {
		return v
	}
	return ix.Status
}

// Pair carries both indices, fetched once per request and shared across all
// states in a batch.
type Pair struct {
	ONI Index
	IOD Index
}

// ClientConfig holds configuration for the indices client.
type ClientConfig struct {
	// ONIURL overrides the NOAA ONI resource URL.
	ONIURL string

	// IODURL overrides the BoM IOD resource URL.
	IODURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with a short timeout.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client fetches the ONI and IOD indices.
type Client struct {
	oniURL     string
	iodURL     string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new indices client.
func NewClient(cfg ClientConfig) *Client {
	oniURL := cfg.ONIURL
	if oniURL == "" {
		oniURL = DefaultONIURL
	}
	iodURL := cfg.IODURL
	if iodURL == "" {
		iodURL = DefaultIODURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		c := resilience.DefaultClientConfig(FeedName)
		c.Timeout = 3 * time.Second
		httpClient = resilience.NewClient(c)
	}

	return &Client{
		oniURL:     oniURL,
		iodURL:     iodURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the feed name.
func (c *Client) Name() string {
	return FeedName
}

// Fetch retrieves both indices. It never fails: an unreadable feed yields an
// absent value with the unavailable status.
func (c *Client) Fetch(ctx context.Context) Pair {
	return Pair{
		ONI: c.fetchOne(ctx, c.oniURL, "oni"),
		IOD: c.fetchOne(ctx, c.iodURL, "iod"),
	}
}

func (c *Client) fetchOne(ctx context.Context, url, name string) Index {
	value, err := c.fetchLastToken(ctx, url)
	if err != nil {
		c.logger.Warn().Err(err).Str("index", name).Msg("climate index unavailable")
		return Index{Value: reading.Absent(), Status: StatusUnavailable}
	}
	if !value.Present() {
		return Index{Value: reading.Absent(), Status: StatusUnavailable}
	}
	return Index{Value: value, Status: StatusOK}
}

func (c *Client) fetchLastToken(ctx context.Context, url string) (reading.Value, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return reading.Absent(), fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return reading.Absent(), fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return reading.Absent(), fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return reading.Absent(), fmt.Errorf("reading body: %w", err)
	}

	return parseLastToken(string(body))
}

// parseLastToken extracts the trailing value from a whitespace-formatted
// index table: last non-empty line, last column.
func parseLastToken(body string) (reading.Value, error) {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return reading.Absent(), fmt.Errorf("parsing index value %q: %w", fields[len(fields)-1], err)
		}
		return reading.Sanitize(v), nil
	}
	return reading.Absent(), fmt.Errorf("empty index resource")
}
