package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request id is stored.
const RequestIDKey = "request_id"

// requestIDHeader is the header used both inbound and outbound.
const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a unique identifier for log correlation.
// An inbound X-Request-ID is trusted and propagated; otherwise a fresh UUID
// is generated. The id is stored in the gin context and echoed back in the
// response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
