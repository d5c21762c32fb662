package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// WatchURL returns the canonical watch page for a video id
func WatchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}

// Result is the first video match for a query
type Result struct {
	Title   string
	VideoID string
}

// Config holds configuration for the video search client
type Config struct {
	APIKey  string
	BaseURL string        // empty keeps the library endpoint
	Timeout time.Duration // zero means no per-call deadline
}

// Client searches YouTube through the Data API v3
type Client struct {
	service *youtube.Service
	timeout time.Duration
}

// NewClient creates a YouTube search client
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	opts := []option.ClientOption{}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	} else {
		// upstream rejects the call; keeps startup from probing default credentials
		opts = append(opts, option.WithoutAuthentication())
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimSuffix(cfg.BaseURL, "/")+"/"))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}

	return &Client{service: service, timeout: cfg.Timeout}, nil
}

// Search returns the best video match for query, or nil when nothing matched
func (c *Client) Search(ctx context.Context, query string) (*Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(1).
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("searching videos: %w", err)
	}

	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		result := &Result{VideoID: item.Id.VideoId}
		if item.Snippet != nil {
			result.Title = item.Snippet.Title
		}
		return result, nil
	}

	return nil, nil
}
