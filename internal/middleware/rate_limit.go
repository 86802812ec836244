package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	rateLimitMaxSources = 100
	rateLimitTTL        = 5 * time.Minute
)

// FillRateLimit bounds how often a single client may start fill runs.
// A fill drives a real browser session, so even a well-behaved UI
// retry loop must not hammer it.
func (m Middleware) FillRateLimit() gin.HandlerFunc {
	perMin := m.config.HTTPServer.FillRatePerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](rateLimitMaxSources, nil, rateLimitTTL)
	limit := rate.Limit(float64(perMin) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(limit, perMin)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many fill requests, slow down",
			})
			return
		}
		c.Next()
	}
}
