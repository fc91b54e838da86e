package config

import "testing"

func TestParseAPIKeys(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		keys := parseAPIKeys("abc123:client-a, def456:client-b")
		if len(keys) != 2 {
			t.Fatalf("expected 2 keys, got %d", len(keys))
		}
		if keys["abc123"] != "client-a" || keys["def456"] != "client-b" {
			t.Fatalf("unexpected mapping: %v", keys)
		}
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		keys := parseAPIKeys("nokey,:noclient,ok:client")
		if len(keys) != 1 || keys["ok"] != "client" {
			t.Fatalf("unexpected mapping: %v", keys)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if keys := parseAPIKeys(""); len(keys) != 0 {
			t.Fatalf("expected empty map, got %v", keys)
		}
	})
}
