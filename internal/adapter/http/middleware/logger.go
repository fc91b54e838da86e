package middleware

import (
	"time"

	"decormitra/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs each request with timing and the resolved client.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		client, _ := ClientID(c)
		logging.Logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Float64("latency_ms", float64(time.Since(start).Milliseconds())),
			zap.String("client_ip", c.ClientIP()),
			zap.String("client", client),
		)
	}
}
