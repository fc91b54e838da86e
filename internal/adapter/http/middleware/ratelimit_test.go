package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestKeyRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(limiter *KeyRateLimiter) *gin.Engine {
		r := gin.New()
		r.Use(limiter.RateLimit())
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	hit := func(r *gin.Engine, key string) int {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		if key != "" {
			req.Header.Set(APIKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("burst then 429", func(t *testing.T) {
		r := newRouter(NewKeyRateLimiter(rate.Limit(1), 2))
		if code := hit(r, "key-a"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := hit(r, "key-a"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := hit(r, "key-a"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}
	})

	t.Run("buckets are independent per key", func(t *testing.T) {
		r := newRouter(NewKeyRateLimiter(rate.Limit(1), 1))
		if code := hit(r, "key-a"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := hit(r, "key-b"); code != http.StatusOK {
			t.Fatalf("expected independent bucket, got %d", code)
		}
		if code := hit(r, "key-a"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 for exhausted key, got %d", code)
		}
	})
}
