package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"decormitra/internal/domain/entities"
)

// Currency is fixed for the whole product; quotes are always in INR.
const Currency = "INR"

// Range bounds are fixed percentage offsets around the final price.
const (
	rangeLowFactor  = 0.85
	rangeHighFactor = 1.15
)

// FallbackPriceRange is the static, pre-agreed band returned to callers when
// the engine hits an internal fault. Pricing is user-facing and must render
// something actionable even then.
var FallbackPriceRange = entities.PriceRange{
	Min:     500000,
	Max:     1500000,
	Display: FormatINR(500000) + " - " + FormatINR(1500000),
}

// Engine turns a questionnaire response plus a persona into a price estimate.
// It is a pure function of its inputs and the static tables; safe for
// concurrent use.
type Engine struct {
	tables *Tables
}

func NewEngine(t *Tables) *Engine {
	return &Engine{tables: t}
}

// Personas returns the persona catalog backing the engine.
func (e *Engine) Personas() map[entities.PersonaID]entities.Persona {
	return e.tables.Personas
}

// Estimate computes a price estimate. It is total over inputs of the expected
// shape: missing or unrecognized discrete fields degrade to neutral defaults
// and an unparseable area falls back to DefaultAreaSqft, so business-input
// irregularities never surface as errors. An error is returned only on an
// unexpected internal fault, recovered at this boundary.
func (e *Engine) Estimate(resp entities.QuestionnaireResponse, personaID string) (est entities.PriceEstimate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pricing engine fault: %v", r)
		}
	}()

	t := e.tables

	rate := e.baseRate(resp.ProjectCategory, resp.FinishTier)
	area := parseArea(resp.AreaSqft, t.DefaultAreaSqft)
	basePrice := rate * area

	breakdown := entities.FactorBreakdown{
		PersonaFactor:  e.personaFactor(personaID),
		MaterialFactor: e.materialFactor(resp),
		RegionFactor:   e.regionFactor(resp.Pincode),
		TimelineFactor: factorOr(t.Timeline, resp.Timeline),
		ScopeFactor:    factorOr(t.Scope, resp.ProjectScope),
	}

	// Single rounding at the end; intermediate totals stay in float so five
	// sequential multiplications do not compound rounding error.
	total := basePrice
	total *= breakdown.PersonaFactor
	total *= breakdown.MaterialFactor
	total *= breakdown.RegionFactor
	total *= breakdown.TimelineFactor
	total *= breakdown.ScopeFactor

	finalPrice := roundINR(total)

	return entities.PriceEstimate{
		BasePrice:    roundINR(basePrice),
		FinalPrice:   finalPrice,
		PriceRange:   rangeAround(finalPrice),
		Currency:     Currency,
		Breakdown:    breakdown,
		CalculatedAt: time.Now().UTC(),
	}, nil
}

func (e *Engine) baseRate(category, tier string) float64 {
	t := e.tables
	if strings.TrimSpace(category) == "" {
		category = t.DefaultCategory
	}
	if strings.TrimSpace(tier) == "" {
		tier = t.DefaultTier
	}
	if tiers, ok := t.BaseRates[category]; ok {
		if rate, ok := tiers[tier]; ok {
			return rate
		}
	}
	return t.FallbackRate
}

func (e *Engine) personaFactor(personaID string) float64 {
	id := entities.PersonaID(strings.ToLower(strings.TrimSpace(personaID)))
	if p, ok := e.tables.Personas[id]; ok {
		return p.Multiplier
	}
	return 1.0
}

// materialFactor is the product of up to five independent per-field lookups;
// each absent or unrecognized selection contributes the neutral 1.0.
func (e *Engine) materialFactor(resp entities.QuestionnaireResponse) float64 {
	selections := map[string]string{
		"flooring":  resp.Flooring,
		"kitchen":   resp.Kitchen,
		"lighting":  resp.Lighting,
		"paint":     resp.Paint,
		"furniture": resp.Furniture,
	}
	factor := 1.0
	for _, field := range materialFields {
		factor *= factorOr(e.tables.Materials[field], selections[field])
	}
	return factor
}

// regionFactor walks the ordered prefix rules; first match wins.
func (e *Engine) regionFactor(pincode string) float64 {
	pincode = strings.TrimSpace(pincode)
	for _, rule := range e.tables.RegionRules {
		if strings.HasPrefix(pincode, rule.Prefix) {
			return rule.Multiplier
		}
	}
	return e.tables.DefaultRegion
}

// factorOr is the shared lookup-with-neutral-default: an unknown or absent
// key always maps to 1.0, never to zero and never to an error.
func factorOr(table map[string]float64, key string) float64 {
	if v, ok := table[strings.TrimSpace(key)]; ok {
		return v
	}
	return 1.0
}

func parseArea(raw string, fallback float64) float64 {
	area, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || area <= 0 {
		return fallback
	}
	return area
}

func roundINR(v float64) int64 {
	return int64(math.Round(v))
}

func rangeAround(finalPrice int64) entities.PriceRange {
	low := roundINR(float64(finalPrice) * rangeLowFactor)
	high := roundINR(float64(finalPrice) * rangeHighFactor)
	return entities.PriceRange{
		Min:     low,
		Max:     high,
		Display: FormatINR(low) + " - " + FormatINR(high),
	}
}
