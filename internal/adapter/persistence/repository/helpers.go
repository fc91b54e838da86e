package repository

import "os"

// Table names are component-local configuration and resolved here rather
// than in the central config package.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
