package middlewares

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	idle      time.Duration
	visitors  map[string]*visitor
	lastSweep time.Time
	mu        sync.Mutex
}

// NewRateLimiter allows perSecond requests per client with bursts of burst.
// Buckets idle for more than idle are dropped by a sweep that runs at most
// once per idle interval.
func NewRateLimiter(perSecond float64, burst int, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idle:     idle,
		visitors: make(map[string]*visitor),
	}
}

func (rl *RateLimiter) get(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.idle {
		for key, v := range rl.visitors {
			if now.Sub(v.lastSeen) > rl.idle {
				delete(rl.visitors, key)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		if !rl.get(ip, time.Now()).Allow() {
			utils.InfoLogger.Warnf("rate limit exceeded for %s on %s", ip, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.JSONResponse{
				Status:  false,
				Message: "too many requests, please slow down",
			})
			return
		}
		c.Next()
	}
}
