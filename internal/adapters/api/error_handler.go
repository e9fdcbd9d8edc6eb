package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/ports"
	errorspkg "weatherwidget.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps request errors to a status code. Query failures never reach here;
// the pipeline renders them into the widget view instead.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if errorspkg.IsValidationError(err) && errors.As(err, &appErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
		return
	}

	if s.logger != nil {
		s.logger.Error("Request failed",
			ports.F("path", c.Request.URL.Path),
			ports.F("error", err.Error()))
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
