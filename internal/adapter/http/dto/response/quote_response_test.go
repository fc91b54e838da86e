package response

import (
	"testing"
	"time"

	"decormitra/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	est := entities.PriceEstimate{
		BasePrice:  2000000,
		FinalPrice: 2800000,
		PriceRange: entities.PriceRange{Min: 2380000, Max: 3220000, Display: "₹23,80,000 - ₹32,20,000"},
		Currency:   "INR",
		Breakdown: entities.FactorBreakdown{
			PersonaFactor:  1.4,
			MaterialFactor: 1.0,
			RegionFactor:   1.0,
			TimelineFactor: 1.0,
			ScopeFactor:    1.0,
		},
		CalculatedAt: now,
	}
	resp := FromEstimate(est)
	if resp.Fallback {
		t.Fatalf("expected fallback=false")
	}
	if resp.FinalPrice != 2800000 || resp.PriceRange.Display != "₹23,80,000 - ₹32,20,000" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Breakdown.PersonaFactor != 1.4 {
		t.Fatalf("unexpected breakdown: %+v", resp.Breakdown)
	}
}

func TestFallbackQuote(t *testing.T) {
	band := entities.PriceRange{Min: 500000, Max: 1500000, Display: "₹5,00,000 - ₹15,00,000"}
	resp := FallbackQuote(band)
	if !resp.Fallback {
		t.Fatalf("expected fallback=true")
	}
	if resp.FinalPrice != 0 || resp.BasePrice != 0 {
		t.Fatalf("fallback must not fabricate prices: %+v", resp)
	}
	if resp.PriceRange.Display != band.Display {
		t.Fatalf("unexpected band: %+v", resp.PriceRange)
	}
}
