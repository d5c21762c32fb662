package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "missing field", err: MissingField("songName", "Song name is required"), expected: http.StatusBadRequest},
		{name: "not found", err: NotFound("nothing"), expected: http.StatusNotFound},
		{name: "upstream", err: Upstream("catalog", stderrors.New("dial tcp"), "failed"), expected: http.StatusInternalServerError},
		{name: "plain error", err: stderrors.New("boom"), expected: http.StatusInternalServerError},
		{name: "wrapped app error", err: fmt.Errorf("search: %w", NotFound("nothing")), expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPCode(tt.err))
		})
	}
}

func TestAppError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Upstream("video", cause, "Failed to fetch video data from YouTube API")

	assert.True(t, stderrors.Is(err, cause))
	appErr, ok := As(fmt.Errorf("play: %w", err))
	require.True(t, ok)
	assert.Equal(t, ErrCodeUpstream, appErr.Code)
	assert.Equal(t, "video", err.Details["service"])
	assert.Contains(t, err.Error(), "caused by: connection refused")
	assert.Equal(t, "Failed to fetch video data from YouTube API", Message(err))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Internal server error", Message(stderrors.New("secret detail")))

	appErr, ok := As(fmt.Errorf("outer: %w", MissingField("q", "Search query is required")))
	require.True(t, ok)
	assert.Equal(t, "Search query is required", appErr.Message)
	assert.Equal(t, "q", appErr.Details["field"])

	_, ok = As(stderrors.New("x"))
	assert.False(t, ok)
}

func TestConfigError(t *testing.T) {
	err := ConfigError("server.port", "out of range")
	assert.Equal(t, ErrCodeConfigInvalid, err.Code)
	assert.Equal(t, "configuration error for 'server.port': out of range", err.Message)
}
