package play

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishvsoni/suno/api/types"
	"github.com/krishvsoni/suno/internal/services/music"
	"github.com/krishvsoni/suno/internal/services/video"
)

type videoFunc func(ctx context.Context, query string) (*video.Result, error)

func (f videoFunc) Search(ctx context.Context, query string) (*video.Result, error) {
	return f(ctx, query)
}

type noCatalog struct{}

func (noCatalog) Search(ctx context.Context, query string) ([]byte, error) {
	return nil, nil
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		videos         videoFunc
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name: "song and artist",
			url:  "/api/play?songName=Blue&artistName=Joni%20Mitchell",
			videos: func(ctx context.Context, query string) (*video.Result, error) {
				assert.Equal(t, "Blue Joni Mitchell", query)
				return &video.Result{Title: "Blue (Audio)", VideoID: "abc123"}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp music.PlayResult
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Playing: Blue by Joni Mitchell", resp.Message)
				assert.Equal(t, "abc123", resp.Video.VideoID)
				assert.Equal(t, "Blue (Audio)", resp.Video.Title)
				assert.Equal(t, "https://www.youtube.com/watch?v=abc123", resp.Video.URL)
			},
		},
		{
			name: "no artist",
			url:  "/api/play?songName=Blue",
			videos: func(ctx context.Context, query string) (*video.Result, error) {
				assert.Equal(t, "Blue", query)
				return &video.Result{Title: "Blue", VideoID: "xyz"}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"message":"Playing: Blue by Unknown Artist"`)
			},
		},
		{
			name:           "missing song name",
			url:            "/api/play?artistName=Joni",
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Song name is required"}`, string(body))
			},
		},
		{
			name: "no video",
			url:  "/api/play?songName=zzzz",
			videos: func(ctx context.Context, query string) (*video.Result, error) {
				return nil, nil
			},
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"No video found for the song."}`, string(body))
			},
		},
		{
			name: "upstream failure",
			url:  "/api/play?songName=Blue",
			videos: func(ctx context.Context, query string) (*video.Result, error) {
				return nil, stderrors.New("quota exceeded")
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Failed to fetch video data from YouTube API"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			videos := tt.videos
			if videos == nil {
				videos = func(ctx context.Context, query string) (*video.Result, error) {
					t.Fatalf("video search called with %q", query)
					return nil, nil
				}
			}

			deps := &types.Dependencies{
				Music: music.NewService(noCatalog{}, videos, log.New(io.Discard)),
			}

			router := gin.New()
			RegisterRoutes(router.Group("/api/play"), deps)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, w.Body.Bytes())
		})
	}
}
