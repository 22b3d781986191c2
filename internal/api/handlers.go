package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/mealdb-explorer/backend/internal/errors"
	"github.com/pageza/mealdb-explorer/backend/internal/middleware"
)

// Version is reported by the health endpoint. Overridden at build time with
// -ldflags "-X github.com/pageza/mealdb-explorer/backend/internal/api.Version=...".
var Version = "1.0.0"

const serviceName = "MealDB Explorer API"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "UP",
		Service:   serviceName,
		Version:   Version,
		Timestamp: time.Now().UTC(),
	})
}

var statusByCode = map[apperrors.ErrorCode]int{
	apperrors.ErrCodeNotFound:          http.StatusNotFound,
	apperrors.ErrCodeUpstream:          http.StatusBadGateway,
	apperrors.ErrCodeInvalidRequest:    http.StatusBadRequest,
	apperrors.ErrCodeRateLimitExceeded: http.StatusTooManyRequests,
	apperrors.ErrCodeInternal:          http.StatusInternalServerError,
}

// respondError translates err into an HTTP status and JSON error body
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := "An unexpected error occurred"
	if se, ok := apperrors.As(err); ok {
		message = se.Message
	}
	if code == apperrors.ErrCodeUpstream {
		message = "External dependency failure: " + message
	}

	// the request logger reports c.Errors
	_ = c.Error(err)
	middleware.AbortWithError(c, status, code, message)
}
