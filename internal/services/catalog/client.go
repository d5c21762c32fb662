package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Fixed multi-search parameters sent on every query
const (
	searchType         = "multi"
	searchOffset       = "0"
	searchLimit        = "10"
	numberOfTopResults = "5"

	// defaultMaxBodyBytes bounds a relayed catalog body
	defaultMaxBodyBytes = 8 << 20
)

// Client handles communication with the RapidAPI Spotify catalog
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	maxBody    int64
}

// Config holds configuration for the catalog client
type Config struct {
	APIKey  string
	BaseURL string
	Host    string
	Timeout time.Duration // zero keeps the transport default
}

// NewClient creates a new catalog API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://spotify23.p.rapidapi.com"
	}

	if cfg.Host == "" {
		if u, err := url.Parse(cfg.BaseURL); err == nil {
			cfg.Host = u.Host
		}
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		host:       cfg.Host,
		apiKey:     cfg.APIKey,
		maxBody:    defaultMaxBodyBytes,
	}
}

// Search runs a multi-search for query and returns the raw response body.
// The body is not interpreted so callers can relay it unchanged.
func (c *Client) Search(ctx context.Context, query string) ([]byte, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", searchType)
	params.Set("offset", searchOffset)
	params.Set("limit", searchLimit)
	params.Set("numberOfTopResults", numberOfTopResults)

	endpoint := fmt.Sprintf("%s/search/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	signRequest(req, c.apiKey, c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("catalog response exceeds %d bytes", c.maxBody)
	}

	return body, nil
}

// StatusError reports a non-2xx catalog response
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog API returned status %d", e.StatusCode)
}
