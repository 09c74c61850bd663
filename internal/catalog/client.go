package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gemshub/internal/domain"
)

// ErrUnexpectedStatus is returned for any non-200 response
var ErrUnexpectedStatus = errors.New("unexpected status")

// maxErrorBody caps how much of a failed response ends up in the log
const maxErrorBody = 512

// Client talks to the Gems Hub HTTP API
type Client struct {
	http       *http.Client
	catalogURL string
	healthURL  string
	apiKey     string
	timeout    time.Duration
}

// ClientOptions configures a Client
type ClientOptions struct {
	CatalogURL string
	HealthURL  string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new API client
func NewClient(opts ClientOptions) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:       hc,
		catalogURL: opts.CatalogURL,
		healthURL:  opts.HealthURL,
		apiKey:     opts.APIKey,
		timeout:    timeout,
	}
}

// FetchCatalog issues one GET to the catalog endpoint and decodes the record array
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.GemRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.get(ctx, c.catalogURL)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w %d from %s: %s", ErrUnexpectedStatus, resp.StatusCode, c.catalogURL, strings.TrimSpace(string(body)))
	}

	var records []domain.GemRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	// Drop nameless entries; they can never match and have no slug
	kept := records[:0]
	for _, r := range records {
		if strings.TrimSpace(r.Name) != "" {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

// HealthResult is the outcome of a health probe
type HealthResult struct {
	StatusCode int
	Body       string
}

// Health calls the API health endpoint. Any HTTP status is a result, not an error.
func (c *Client) Health(ctx context.Context) (*HealthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.get(ctx, c.healthURL)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to read health response: %w", err)
	}
	return &HealthResult{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	return c.http.Do(req)
}
