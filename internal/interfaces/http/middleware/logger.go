package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/logger"
)

// LoggerMiddleware writes one structured access-log line per request.
// Probe endpoints are skipped to keep the log readable.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if path == "/health" || path == "/metrics" {
			return
		}

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
