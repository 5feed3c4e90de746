package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client tracks one IP's request count inside its current fixed window.
type client struct {
	windowStart time.Time
	count       int
}

const (
	rateWindow = time.Minute
	rateLimit  = 120
)

// nowFunc is an indirection for tests.
var nowFunc = time.Now

// In-memory store; a single instance is enough for this service. Multi-node
// deployments would need a shared store instead.
var (
	clients   = make(map[string]*client)
	clientsMu sync.Mutex
	lastPrune time.Time
)

// RateLimiter allows up to rateLimit requests per rateWindow per client IP,
// answering 429 beyond that. Windows are fixed: the anchor is set by the
// first request of a window and never moved by later requests (rejected ones
// included), so a throttled client recovers as soon as rateWindow passes.
// Entries whose window has expired are evicted lazily, at most once per
// rateWindow.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := nowFunc()

		clientsMu.Lock()
		if now.Sub(lastPrune) > rateWindow {
			for k, cl := range clients {
				if now.Sub(cl.windowStart) > rateWindow {
					delete(clients, k)
				}
			}
			lastPrune = now
		}

		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > rateWindow {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > rateLimit
		clientsMu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
