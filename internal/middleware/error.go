package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/mealdb-explorer/backend/internal/errors"
	"github.com/pageza/mealdb-explorer/backend/internal/logging"
	"github.com/pageza/mealdb-explorer/backend/internal/metrics"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AbortWithError writes an ErrorResponse and stops the handler chain
func AbortWithError(c *gin.Context, status int, code apperrors.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     string(code),
		Message:   message,
		RequestID: GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// ErrorHandler recovers from panics in later handlers, logs them and returns
// a JSON error response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				metrics.PanicRecoveries.Inc()
				logging.FromContext(c.Request.Context()).
					WithField("panic", err).
					WithField("stack", string(debug.Stack())).
					Error("recovered from panic")

				AbortWithError(c, http.StatusInternalServerError, apperrors.ErrCodeInternal, "Internal Server Error")
			}
		}()

		c.Next()
	}
}

// NotFound answers requests that matched no route
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		AbortWithError(c, http.StatusNotFound, apperrors.ErrCodeNotFound, "Route not found: "+c.Request.URL.Path)
	}
}
