package middleware

import (
	"net/http"
	"strings"

	"decormitra/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// APIKeyHeader carries the tenant's API key.
	APIKeyHeader = "X-API-Key"
	// ContextClientIDKey is the gin context key for the authenticated client.
	ContextClientIDKey = "clientID"
)

var (
	errMissingAPIKey = pkg.NewDomainErrorSimple("MISSING_API_KEY", "Missing API key", http.StatusUnauthorized)
	errInvalidAPIKey = pkg.NewDomainErrorSimple("INVALID_API_KEY", "Invalid API key", http.StatusUnauthorized)
)

// APIKeyAuth resolves the X-API-Key header to a client ID. keys maps API key
// to client; it is read-only after boot.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if key == "" {
			c.AbortWithStatusJSON(errMissingAPIKey.HTTPStatus, errMissingAPIKey.ToHTTPError())
			return
		}
		client, ok := keys[key]
		if !ok {
			c.AbortWithStatusJSON(errInvalidAPIKey.HTTPStatus, errInvalidAPIKey.ToHTTPError())
			return
		}
		c.Set(ContextClientIDKey, client)
		c.Next()
	}
}

// ClientID returns the authenticated client for the request, if any.
func ClientID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextClientIDKey)
	if !ok {
		return "", false
	}
	client, ok := v.(string)
	return client, ok && client != ""
}
