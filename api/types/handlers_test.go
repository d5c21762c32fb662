package types

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/krishvsoni/suno/pkg/errors"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "missing field",
			err:          errors.MissingField("songName", "Song name is required"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Song name is required"}`,
		},
		{
			name:         "not found",
			err:          errors.NotFound("No video found for the song."),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"No video found for the song."}`,
		},
		{
			name:         "internal details are hidden",
			err:          stderrors.New("dial tcp 10.0.0.1:443: refused"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
