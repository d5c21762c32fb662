package player

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/krishvsoni/suno/internal/services/catalog"
)

// APIClient talks to the proxy's search and play endpoints
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the proxy at baseURL
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx proxy response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("proxy returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("proxy returned status %d: %s", e.StatusCode, e.Message)
}

// Search returns the albums the catalog found for query
func (c *APIClient) Search(ctx context.Context, query string) ([]Album, error) {
	params := url.Values{}
	params.Set("q", query)

	var raw json.RawMessage
	if err := c.get(ctx, "/api/search", params, &raw); err != nil {
		return nil, err
	}

	// Anything that is not an object with an albums section has no albums
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return []Album{}, nil
	}
	if section, ok := fields["albums"]; !ok || string(section) == "null" {
		return []Album{}, nil
	}

	var resp catalog.SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding albums: %w", err)
	}

	albums := make([]Album, 0, len(resp.Albums.Items))
	for _, item := range resp.Albums.Items {
		if item.Data == nil {
			continue
		}
		albums = append(albums, Album{
			URI:      item.Data.URI,
			Name:     item.Data.Name,
			Artists:  item.Data.ArtistNames(),
			CoverURL: item.Data.CoverURL(),
		})
	}
	return albums, nil
}

// Play asks the proxy for a video. A 2xx response without a video yields nil.
func (c *APIClient) Play(ctx context.Context, sel Selection) (*VideoReference, error) {
	params := url.Values{}
	params.Set("songName", sel.SongName)
	params.Set("artistName", sel.ArtistName)

	var resp struct {
		Message string          `json:"message"`
		Video   *VideoReference `json:"video"`
	}
	if err := c.get(ctx, "/api/play", params, &resp); err != nil {
		return nil, err
	}
	return resp.Video, nil
}

func (c *APIClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body) == nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
