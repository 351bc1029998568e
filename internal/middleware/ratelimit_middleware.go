package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HemInfotech/hem_api/internal/utils"
)

// LoginRateLimiter counts failed login attempts per IP.
type LoginRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
	limit    int
	window   time.Duration
	now      func() time.Time
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

const sweepInterval = 5 * time.Minute

// NewLoginRateLimiter allows limit failures per IP within window. Expired
// entries are swept in the background every five minutes.
func NewLoginRateLimiter(limit int, window time.Duration) *LoginRateLimiter {
	r := &LoginRateLimiter{
		attempts: make(map[string]*attemptInfo),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
	go r.cleanup()
	return r
}

func (r *LoginRateLimiter) cleanup() {
	ticker := time.NewTicker(sweepInterval)
	for range ticker.C {
		r.sweep()
	}
}

// sweep drops every IP whose window has expired.
func (r *LoginRateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, info := range r.attempts {
		if now.Sub(info.firstAt) > r.window {
			delete(r.attempts, ip)
		}
	}
}

// Blocked reports whether ip exhausted its failures in the current window.
func (r *LoginRateLimiter) Blocked(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.attempts[ip]
	if !ok {
		return false
	}
	if r.now().Sub(info.firstAt) > r.window {
		delete(r.attempts, ip)
		return false
	}
	return info.count >= r.limit
}

// Fail records a failed attempt.
func (r *LoginRateLimiter) Fail(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	info, ok := r.attempts[ip]
	if !ok || now.Sub(info.firstAt) > r.window {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return
	}
	info.count++
}

// Handle rejects blocked IPs before the login handler runs and records a
// failure whenever the handler answers 401.
func (r *LoginRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if r.Blocked(ip) {
			utils.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many failed login attempts")
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusUnauthorized {
			r.Fail(ip)
		}
	}
}
