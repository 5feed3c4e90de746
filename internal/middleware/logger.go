package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renanmoretto/dias-uteis/internal/logger"
)

// RequestLogger emits one structured log line per request: method, path,
// status, latency and the request id injected by RequestID().
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		evt := logger.L().Info()
		if c.Writer.Status() >= 500 {
			evt = logger.L().Error()
		}
		evt.
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", method).
			Str("path", path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}
