package request

import (
	"encoding/json"
	"testing"
)

func TestFlexibleString_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "number", in: `{"areaSqft": 1200}`, want: "1200"},
		{name: "decimal number", in: `{"areaSqft": 1234.5}`, want: "1234.5"},
		{name: "numeric string", in: `{"areaSqft": "950"}`, want: "950"},
		{name: "junk string passes through", in: `{"areaSqft": "lots"}`, want: "lots"},
		{name: "null", in: `{"areaSqft": null}`, want: ""},
		{name: "absent", in: `{}`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req QuoteRequest
			if err := json.Unmarshal([]byte(tc.in), &req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(req.AreaSqft) != tc.want {
				t.Fatalf("got %q, want %q", req.AreaSqft, tc.want)
			}
		})
	}

	t.Run("non-numeric literal is rejected", func(t *testing.T) {
		var req QuoteRequest
		if err := json.Unmarshal([]byte(`{"areaSqft": true}`), &req); err == nil {
			t.Fatalf("expected error for boolean")
		}
	})
}

func TestQuoteRequest_ToQuestionnaire(t *testing.T) {
	req := QuoteRequest{
		ProjectCategory: "Residential",
		FinishTier:      "Premium",
		AreaSqft:        "1000",
		Flooring:        "marble-granite",
		Pincode:         "400001",
	}
	q := req.ToQuestionnaire()
	if q.ProjectCategory != "Residential" || q.AreaSqft != "1000" || q.Flooring != "marble-granite" || q.Pincode != "400001" {
		t.Fatalf("unexpected mapping: %+v", q)
	}
}
