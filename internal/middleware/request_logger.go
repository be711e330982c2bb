package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
)

// RequestLogger logs incoming HTTP requests using slog
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		// Skip logging for health checks and scrapes to avoid noise
		if path == "/api/v1/health" || path == "/metrics" {
			return
		}

		if raw != "" {
			path = path + "?" + raw
		}
		statusCode := c.Writer.Status()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", statusCode),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Request.UserAgent()),
		}

		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			attrs = append(attrs, slog.String("error", errorMessage))
		}

		// request_id and business_id come with the request-scoped logger
		log := logger.FromContext(c.Request.Context())

		msg := "Incoming request"
		if statusCode >= 500 {
			log.Error(msg, attrs...)
		} else if statusCode >= 400 {
			log.Warn(msg, attrs...)
		} else {
			log.Info(msg, attrs...)
		}
	}
}
