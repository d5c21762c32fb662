package cache

import (
	"context"
	"time"
)

// Entry is a stored proxy response
type Entry struct {
	Status      int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// Store keeps upstream responses keyed by request
type Store interface {
	// Get returns a live entry for key
	Get(ctx context.Context, key string) (*Entry, bool)

	// Set stores entry for ttl. A non-positive ttl uses the store default.
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration)
}

// StatsReporter is implemented by stores that count their own usage
type StatsReporter interface {
	Stats() Stats
}

// Stats provides statistics about cache usage
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
	Bytes     int64 `json:"bytes"`
	MaxBytes  int64 `json:"maxBytes"`
}
