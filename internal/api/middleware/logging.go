package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// quietPaths are polled by probes and scrapers and not logged
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// StructuredLogging provides structured logging middleware
func StructuredLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if quietPaths[param.Path] {
			return ""
		}

		requestID, _ := param.Keys[RequestIDKey].(string)

		level := slog.LevelInfo
		switch {
		case param.StatusCode >= 500:
			level = slog.LevelError
		case param.StatusCode >= 400:
			level = slog.LevelWarn
		}

		logger.Log(param.Request.Context(), level, "HTTP Request",
			"request_id", requestID,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"body_size", param.BodySize,
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
			"error", param.ErrorMessage,
		)

		return ""
	})
}
