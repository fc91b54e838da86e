package response

import (
	"time"

	"decormitra/internal/domain/entities"
)

type PriceRangeResponse struct {
	Min     int64  `json:"min"`
	Max     int64  `json:"max"`
	Display string `json:"display"`
}

type BreakdownResponse struct {
	PersonaFactor  float64 `json:"personaFactor"`
	MaterialFactor float64 `json:"materialFactor"`
	RegionFactor   float64 `json:"regionFactor"`
	TimelineFactor float64 `json:"timelineFactor"`
	ScopeFactor    float64 `json:"scopeFactor"`
}

type QuoteResponse struct {
	BasePrice    int64              `json:"basePrice"`
	FinalPrice   int64              `json:"finalPrice"`
	PriceRange   PriceRangeResponse `json:"priceRange"`
	Currency     string             `json:"currency"`
	Breakdown    BreakdownResponse  `json:"breakdown"`
	CalculatedAt time.Time          `json:"calculatedAt"`
	Fallback     bool               `json:"fallback"`
}

func FromEstimate(e entities.PriceEstimate) QuoteResponse {
	return QuoteResponse{
		BasePrice:  e.BasePrice,
		FinalPrice: e.FinalPrice,
		PriceRange: PriceRangeResponse{
			Min:     e.PriceRange.Min,
			Max:     e.PriceRange.Max,
			Display: e.PriceRange.Display,
		},
		Currency: e.Currency,
		Breakdown: BreakdownResponse{
			PersonaFactor:  e.Breakdown.PersonaFactor,
			MaterialFactor: e.Breakdown.MaterialFactor,
			RegionFactor:   e.Breakdown.RegionFactor,
			TimelineFactor: e.Breakdown.TimelineFactor,
			ScopeFactor:    e.Breakdown.ScopeFactor,
		},
		CalculatedAt: e.CalculatedAt,
	}
}

// FallbackQuote is what callers render when the engine hits an internal
// fault: no numbers besides the pre-agreed display band, Fallback set so the
// frontend can show a softer "indicative" treatment.
func FallbackQuote(band entities.PriceRange) QuoteResponse {
	return QuoteResponse{
		PriceRange: PriceRangeResponse{
			Min:     band.Min,
			Max:     band.Max,
			Display: band.Display,
		},
		Currency:     "INR",
		CalculatedAt: time.Now().UTC(),
		Fallback:     true,
	}
}
