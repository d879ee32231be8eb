package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"voice2site/internal/app/metrics"
)

// Metrics counts requests and observes latency per matched route
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
