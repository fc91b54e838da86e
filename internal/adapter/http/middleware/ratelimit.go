package middleware

import (
	"net/http"
	"sync"

	"decormitra/internal/logging"
	"decormitra/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Rate limit exceeded", http.StatusTooManyRequests)

// KeyRateLimiter manages one token bucket per API key. Unauthenticated
// requests fall back to a per-IP bucket so the ping and docs routes stay
// protected too.
type KeyRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

func NewKeyRateLimiter(r rate.Limit, burst int) *KeyRateLimiter {
	return &KeyRateLimiter{rate: r, burst: burst}
}

func (k *KeyRateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := k.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}
	limiter, _ := k.limiters.LoadOrStore(key, rate.NewLimiter(k.rate, k.burst))
	return limiter.(*rate.Limiter)
}

// RateLimit returns a middleware enforcing the per-key bucket.
func (k *KeyRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if !k.getLimiter(key).Allow() {
			logging.Logger.Warn("rate limit exceeded",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
