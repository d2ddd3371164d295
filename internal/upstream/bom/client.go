// Package bom fetches the Bureau of Meteorology warnings feed. Warnings are
// advisory input to the hazard heuristics; a broken feed must never fail a
// request, so the client degrades to an empty list.
package bom

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/provider/resilience"
)

const (
	// FeedName identifies this upstream feed.
	FeedName = "bom"

	// DefaultWarningsURL is the BoM warnings XML feed.
	DefaultWarningsURL = "http://www.bom.gov.au/fwo/IDQ20065.xml"

	// maxWarnings caps how many warning titles are surfaced.
	maxWarnings = 20
)

// ClientConfig holds configuration for the BoM client.
type ClientConfig struct {
	// WarningsURL overrides the warnings feed URL.
	WarningsURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a BoM warnings feed client.
type Client struct {
	warningsURL string
	httpClient  *resilience.Client
	logger      zerolog.Logger
}

// NewClient creates a new BoM client.
func NewClient(cfg ClientConfig) *Client {
	url := cfg.WarningsURL
	if url == "" {
		url = DefaultWarningsURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		c := resilience.DefaultClientConfig(FeedName)
		c.Timeout = 10 * time.Second
		httpClient = resilience.NewClient(c)
	}

	return &Client{
		warningsURL: url,
		httpClient:  httpClient,
		logger:      cfg.Logger,
	}
}

// Name returns the feed name.
func (c *Client) Name() string {
	return FeedName
}

// Warnings returns up to 20 current warning titles. Any failure yields an
// empty list, never an error.
func (c *Client) Warnings(ctx context.Context) []string {
	titles, err := c.fetchTitles(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("bom warnings unavailable")
		return []string{}
	}
	return titles
}

func (c *Client) fetchTitles(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.warningsURL, http.NoBody)
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

	// Titles live at item/title wherever item elements appear, so walk the
	// token stream rather than assuming the exact feed nesting.
	titles := []string{}
	decoder := xml.NewDecoder(resp.Body)
	inItem := false
	for len(titles) < maxWarnings {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "item":
				inItem = true
			case "title":
				if inItem {
					var title string
					if err := decoder.DecodeElement(&title, &el); err == nil && title != "" {
						titles = append(titles, title)
					}
				}
			}
		case xml.EndElement:
			if el.Name.Local == "item" {
				inItem = false
			}
		}
	}
	return titles, nil
}
