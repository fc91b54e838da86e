// Package config loads process configuration from the environment.
// Component-local settings (table names, gateway endpoints) stay with their
// components; this package only carries what the HTTP layer needs at boot.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port int
	Env  string

	// APIKeys maps an API key to the tenant (client) it belongs to.
	// Parsed from API_KEYS="key1:client-a,key2:client-b".
	APIKeys map[string]string

	// Token bucket applied per API key.
	RateLimitRPS   float64
	RateLimitBurst int

	AllowedOrigins []string
}

func Load() Config {
	return Config{
		Port:           getenvInt("PORT", 8080),
		Env:            getenvDefault("APP_ENV", "development"),
		APIKeys:        parseAPIKeys(os.Getenv("API_KEYS")),
		RateLimitRPS:   getenvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getenvInt("RATE_LIMIT_BURST", 10),
		AllowedOrigins: splitNonEmpty(getenvDefault("ALLOWED_ORIGINS", "*")),
	}
}

func parseAPIKeys(raw string) map[string]string {
	keys := make(map[string]string)
	for _, pair := range splitNonEmpty(raw) {
		key, client, ok := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		client = strings.TrimSpace(client)
		if ok && key != "" && client != "" {
			keys[key] = client
		}
	}
	return keys
}

func splitNonEmpty(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
