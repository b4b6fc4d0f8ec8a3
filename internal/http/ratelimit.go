package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client IP inside a fixed window. It is
// applied to the JSON API routes only.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*requestWindow
	maxRequests int
	window      time.Duration
}

type requestWindow struct {
	start time.Time
	count int
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RateLimiter{
		windows:     make(map[string]*requestWindow),
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow records a request for ip and reports whether it is within the
// limit. Expired windows are reset in place, so the map only holds one
// entry per active caller.
func (rl *RateLimiter) Allow(ip string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.start) > rl.window {
		rl.windows[ip] = &requestWindow{start: now, count: 1}
		return true, 0
	}

	w.count++
	if w.count > rl.maxRequests {
		return false, w.start.Add(rl.window).Sub(now)
	}
	return true, 0
}

// Middleware rejects over-limit callers with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := rl.Allow(c.ClientIP())
		if !allowed {
			c.Header("Retry-After", retryAfter.String())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}
