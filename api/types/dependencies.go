package types

import (
	"github.com/charmbracelet/log"

	"github.com/krishvsoni/suno/internal/services/cache"
	"github.com/krishvsoni/suno/internal/services/music"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Music  music.MusicService
	Logger *log.Logger
	Cache  cache.Store // nil disables response caching
	Build  BuildInfo

	// Upstreams reports which upstream credentials are configured
	Upstreams map[string]bool
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}
