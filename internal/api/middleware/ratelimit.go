package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const visitorIdleTTL = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per key and forgets keys that
// have been idle for longer than idleTTL.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
}

// NewRateLimiter creates a limiter allowing r events per second with the
// given burst, per key.
func NewRateLimiter(r rate.Limit, burst int, idleTTL time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
		idleTTL:  idleTTL,
	}
	go rl.sweepLoop()
	return rl
}

// Get returns the bucket for key
func (rl *RateLimiter) Get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Len is the number of tracked keys
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()
	for now := range ticker.C {
		rl.sweep(now)
	}
}

// PerIP creates middleware that rate limits by client IP. The limit is
// expressed per minute because symptom checks are infrequent.
func PerIP(requestsPerMinute, burst int) gin.HandlerFunc {
	limiter := NewRateLimiter(rate.Limit(float64(requestsPerMinute)/60.0), burst, visitorIdleTTL)

	return func(c *gin.Context) {
		l := limiter.Get(c.ClientIP())
		if !l.Allow() {
			retry := time.Duration(float64(time.Second) / float64(l.Limit()))
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many symptom checks from this address. Please wait a moment and try again.",
			})
			return
		}
		c.Next()
	}
}

// WebSocketLimiter limits messages on a single WebSocket connection
type WebSocketLimiter struct {
	limiter *rate.Limiter
}

// NewWebSocketLimiter creates a limiter for WebSocket messages
func NewWebSocketLimiter(messagesPerMinute, burst int) *WebSocketLimiter {
	return &WebSocketLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(messagesPerMinute)/60.0), burst),
	}
}

// Allow checks if a message is allowed
func (wsl *WebSocketLimiter) Allow() bool {
	return wsl.limiter.Allow()
}
