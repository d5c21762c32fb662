package types

import "github.com/krishvsoni/suno/internal/services/cache"

// Status constants for API responses
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error" example:"Song name is required"`
}

// MessageResponse carries a single human-readable message
type MessageResponse struct {
	Message string `json:"message" example:"Welcome to Suno API"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string            `json:"status" example:"ok"`
	Timestamp string            `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Upstreams map[string]string `json:"upstreams"`
	Cache     *cache.Stats      `json:"cache,omitempty"`
}

// VersionResponse is returned by the version endpoint
type VersionResponse struct {
	Name string `json:"name" example:"Suno API"`
	BuildInfo
}
