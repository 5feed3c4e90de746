package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renanmoretto/dias-uteis/internal/logger"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	r := newRouter(RequestID())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestRequestID_PropagatesInbound(t *testing.T) {
	r := newRouter(RequestID())
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("want inbound id echoed, got %q", got)
	}
}

func TestRequestLogger_DoesNotBreakRequest(t *testing.T) {
	r := newRouter(RequestID(), RequestLogger())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?date=2023-11-08", nil))
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestRecovery_TurnsPanicInto500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d, want 500", w.Code)
	}
}

// resetRateLimiter gives each test a fresh client table and restores the
// clock indirection afterwards.
func resetRateLimiter(t *testing.T) {
	t.Helper()
	clientsMu.Lock()
	clients = make(map[string]*client)
	lastPrune = time.Time{}
	clientsMu.Unlock()

	old := nowFunc
	t.Cleanup(func() { nowFunc = old })
}

func rateLimitedRequest(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Exceeded(t *testing.T) {
	resetRateLimiter(t)

	r := newRouter(RateLimiter())
	var last int
	for i := 0; i < rateLimit+1; i++ {
		last = rateLimitedRequest(r, "10.0.0.1")
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("final code=%d, want 429", last)
	}
}

func TestRateLimiter_RecoversAfterWindow(t *testing.T) {
	resetRateLimiter(t)

	base := time.Date(2023, time.November, 8, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return base }

	r := newRouter(RateLimiter())
	for i := 0; i < rateLimit; i++ {
		if code := rateLimitedRequest(r, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d code=%d, want 200", i+1, code)
		}
	}
	if code := rateLimitedRequest(r, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("over-limit code=%d, want 429", code)
	}

	// Slow trickle inside the same window stays rejected but must not move
	// the window anchor.
	nowFunc = func() time.Time { return base.Add(59 * time.Second) }
	if code := rateLimitedRequest(r, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("in-window code=%d, want 429", code)
	}

	// Once the window elapses the client is admitted again.
	nowFunc = func() time.Time { return base.Add(rateWindow + time.Second) }
	if code := rateLimitedRequest(r, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("post-window code=%d, want 200", code)
	}
}

func TestRateLimiter_PrunesStaleClients(t *testing.T) {
	resetRateLimiter(t)

	base := time.Date(2023, time.November, 8, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return base }

	r := newRouter(RateLimiter())
	for i := 1; i <= 50; i++ {
		rateLimitedRequest(r, fmt.Sprintf("10.0.0.%d", i))
	}

	nowFunc = func() time.Time { return base.Add(2 * rateWindow) }
	rateLimitedRequest(r, "10.0.1.1")

	clientsMu.Lock()
	n := len(clients)
	clientsMu.Unlock()
	if n != 1 {
		t.Fatalf("clients after prune = %d, want 1", n)
	}
}
