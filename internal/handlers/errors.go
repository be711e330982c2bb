package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/services"
)

// errInvalidQuery marks malformed query parameters
var errInvalidQuery = errors.New("parámetros de consulta inválidos")

// statusFor maps service and engine errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, analytics.ErrDataIntegrity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errInvalidQuery),
		errors.Is(err, analytics.ErrInvalidPeriod),
		errors.Is(err, analytics.ErrPeriodTooLong),
		errors.Is(err, analytics.ErrInvalidGranularity),
		errors.Is(err, analytics.ErrInvalidHorizon),
		errors.Is(err, services.ErrInvalidReport):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": msg}. Server-side failures keep their detail
// in the request log, not in the response.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		c.JSON(status, gin.H{"error": "Error interno del servidor"})
		return
	}
	if status == http.StatusServiceUnavailable {
		c.JSON(status, gin.H{"error": services.ErrDataUnavailable.Error()})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
