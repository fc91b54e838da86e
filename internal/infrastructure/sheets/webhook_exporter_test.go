package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"decormitra/internal/domain/entities"
)

func TestWebhookExporter_ExportLead(t *testing.T) {
	t.Run("posts one row per lead", func(t *testing.T) {
		var got leadRow
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected json content type, got %q", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		exporter := &WebhookExporter{baseURL: srv.URL, client: srv.Client()}
		lead := entities.Lead{
			ID:        "lead-1",
			ClientID:  "client-a",
			Name:      "Priya Sharma",
			Phone:     "9876543210",
			Pincode:   "400001",
			CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		}
		if err := exporter.ExportLead(context.Background(), lead); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LeadID != "lead-1" || got.Client != "client-a" || got.CapturedAt != "2025-06-01T10:00:00Z" {
			t.Fatalf("unexpected row: %+v", got)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		exporter := &WebhookExporter{baseURL: srv.URL, client: srv.Client()}
		if err := exporter.ExportLead(context.Background(), entities.Lead{ID: "lead-1"}); err == nil {
			t.Fatalf("expected error on 502")
		}
	})

	t.Run("mock mode never calls out", func(t *testing.T) {
		exporter := &WebhookExporter{mockMode: true}
		if err := exporter.ExportLead(context.Background(), entities.Lead{ID: "lead-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing url", func(t *testing.T) {
		if _, err := NewWebhookExporter(""); err == nil {
			t.Fatalf("expected ErrMissingSheetWebhookURL")
		}
	})
}
