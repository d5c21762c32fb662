package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishvsoni/suno/api/types"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		deps         *types.Dependencies
		expectedBody map[string]interface{}
	}{
		{
			name: "build info from dependencies",
			deps: &types.Dependencies{Build: types.BuildInfo{
				Version:   "1.2.3",
				GitCommit: "abc1234",
				BuildTime: "2024-01-01",
				GoVersion: "go1.24",
			}},
			expectedBody: map[string]interface{}{
				"name":      "Suno API",
				"version":   "1.2.3",
				"gitCommit": "abc1234",
				"buildTime": "2024-01-01",
				"goVersion": "go1.24",
			},
		},
		{
			name: "nil dependencies",
			deps: nil,
			expectedBody: map[string]interface{}{
				"name":      "Suno API",
				"version":   "",
				"gitCommit": "",
				"buildTime": "",
				"goVersion": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			RegisterRoutes(router, tt.deps)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}
