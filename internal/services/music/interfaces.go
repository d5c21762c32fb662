package music

import (
	"context"
	"encoding/json"

	"github.com/krishvsoni/suno/internal/services/video"
)

// CatalogSearcher runs a catalog multi-search and returns the raw body
type CatalogSearcher interface {
	Search(ctx context.Context, query string) ([]byte, error)
}

// VideoSearcher finds the best video match for a free-text query.
// A nil result with a nil error means nothing matched.
type VideoSearcher interface {
	Search(ctx context.Context, query string) (*video.Result, error)
}

// Logger is the structured logger the service reports upstream failures to.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// MusicService is the proxy's business interface
type MusicService interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
	Play(ctx context.Context, songName, artistName string) (*PlayResult, error)
}
