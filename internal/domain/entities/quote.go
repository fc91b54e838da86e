package entities

import "time"

// QuestionnaireResponse captures the quoting questionnaire as free-form
// strings. Every field is optional: the pricing engine resolves absent or
// unrecognized values to documented defaults instead of failing, so a partial
// questionnaire mid-conversation still yields an estimate.
type QuestionnaireResponse struct {
	ProjectCategory string
	FinishTier      string
	AreaSqft        string
	Flooring        string
	Kitchen         string
	Lighting        string
	Paint           string
	Furniture       string
	Timeline        string
	ProjectScope    string
	Pincode         string
}

// FactorBreakdown records every multiplier actually applied to an estimate,
// in the order the engine applied them. Exposed to callers for trust display.
type FactorBreakdown struct {
	PersonaFactor  float64 `json:"personaFactor"`
	MaterialFactor float64 `json:"materialFactor"`
	RegionFactor   float64 `json:"regionFactor"`
	TimelineFactor float64 `json:"timelineFactor"`
	ScopeFactor    float64 `json:"scopeFactor"`
}

// PriceRange is a presentation band around the final price (−15% / +15%),
// not a probabilistic interval. Display carries the Indian-format INR string.
type PriceRange struct {
	Min     int64  `json:"min"`
	Max     int64  `json:"max"`
	Display string `json:"display"`
}

// PriceEstimate is the immutable result of one engine run. It has no
// lifecycle of its own; it is recomputed on every request and never stored.
type PriceEstimate struct {
	BasePrice    int64           `json:"basePrice"`
	FinalPrice   int64           `json:"finalPrice"`
	PriceRange   PriceRange      `json:"priceRange"`
	Currency     string          `json:"currency"`
	Breakdown    FactorBreakdown `json:"breakdown"`
	CalculatedAt time.Time       `json:"calculatedAt"`
}
