package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "Validation",
			err:             errors.NewValidationError("place is too long"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "place is too long",
		},
		{
			name:            "Configuration",
			err:             errors.NewConfigurationError("bad config", nil),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "WrappedAppError",
			err:             fmt.Errorf("search: %w", errors.NewValidationError("bad place")),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "bad place",
		},
		{
			name:            "PlainError",
			err:             fmt.Errorf("boom"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTPServerAdapter{logger: setupLoggerMockAPI(t)}
			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				server.handleError(c, tt.err)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMessage, response.Error)
		})
	}
}
