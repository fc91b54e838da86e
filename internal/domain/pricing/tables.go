package pricing

import "decormitra/internal/domain/entities"

// RegionRule maps a pincode prefix to a location cost multiplier. Rules are
// evaluated in slice order and the first match wins, so overlapping prefixes
// (Delhi NCR has three) resolve deterministically.
type RegionRule struct {
	Prefix     string
	City       string
	Multiplier float64
}

// Tables is the static rate model the engine computes over. It is built once
// at process start and never mutated afterwards, which makes the engine safe
// for unconstrained concurrent use.
//
// All multipliers are strictly positive. Unknown keys never reach the tables:
// they resolve to the neutral 1.0 through factorOr.
type Tables struct {
	// BaseRates maps project category -> finish tier -> INR per sqft.
	BaseRates       map[string]map[string]float64
	FallbackRate    float64
	DefaultCategory string
	DefaultTier     string
	DefaultAreaSqft float64

	Personas map[entities.PersonaID]entities.Persona

	// Materials maps questionnaire field -> selected option -> multiplier.
	Materials map[string]map[string]float64

	RegionRules   []RegionRule
	DefaultRegion float64

	Timeline map[string]float64
	Scope    map[string]float64
}

// materialFields fixes the order material lookups contribute to the product.
// The product is commutative; the order only matters for log readability.
var materialFields = []string{"flooring", "kitchen", "lighting", "paint", "furniture"}

// DefaultTables returns the production rate model.
func DefaultTables() *Tables {
	return &Tables{
		BaseRates: map[string]map[string]float64{
			"Residential": {
				"Economy":  1200,
				"Standard": 1600,
				"Premium":  2000,
			},
			"Commercial": {
				"Economy":  1000,
				"Standard": 1400,
				"Premium":  1800,
			},
		},
		FallbackRate:    1500,
		DefaultCategory: "Residential",
		DefaultTier:     "Standard",
		DefaultAreaSqft: 1000,

		Personas: map[entities.PersonaID]entities.Persona{
			entities.PersonaArjun: {
				ID:         entities.PersonaArjun,
				Name:       "Arjun Mehta",
				Expertise:  "Budget-friendly family homes and space optimisation",
				Multiplier: 0.9,
			},
			entities.PersonaKavya: {
				ID:         entities.PersonaKavya,
				Name:       "Kavya Reddy",
				Expertise:  "Luxury residences and statement interiors",
				Multiplier: 1.4,
			},
			entities.PersonaMeera: {
				ID:         entities.PersonaMeera,
				Name:       "Meera Iyer",
				Expertise:  "Modern minimalist apartments",
				Multiplier: 1.1,
			},
			entities.PersonaVikram: {
				ID:         entities.PersonaVikram,
				Name:       "Vikram Singh",
				Expertise:  "Commercial spaces and office fit-outs",
				Multiplier: 1.2,
			},
		},

		Materials: map[string]map[string]float64{
			"flooring": {
				"vitrified-tiles": 1.0,
				"wooden-laminate": 1.3,
				"marble-granite":  1.8,
				"italian-marble":  2.4,
			},
			"kitchen": {
				"basic-modular":   1.0,
				"semi-modular":    1.4,
				"premium-modular": 2.2,
			},
			"lighting": {
				"basic":             1.0,
				"ambient-led":       1.3,
				"designer-fixtures": 1.6,
			},
			"paint": {
				"standard-emulsion": 1.0,
				"premium-emulsion":  1.2,
				"textured-designer": 1.5,
			},
			"furniture": {
				"essential":       1.0,
				"custom-modular":  1.5,
				"luxury-designer": 2.0,
			},
		},

		RegionRules: []RegionRule{
			{Prefix: "400", City: "Mumbai", Multiplier: 1.25},
			{Prefix: "110", City: "Delhi", Multiplier: 1.2},
			{Prefix: "122", City: "Gurgaon", Multiplier: 1.2},
			{Prefix: "201", City: "Noida", Multiplier: 1.15},
			{Prefix: "560", City: "Bengaluru", Multiplier: 1.15},
			{Prefix: "600", City: "Chennai", Multiplier: 1.1},
			{Prefix: "500", City: "Hyderabad", Multiplier: 1.1},
			{Prefix: "411", City: "Pune", Multiplier: 1.1},
			{Prefix: "700", City: "Kolkata", Multiplier: 1.05},
		},
		DefaultRegion: 1.0,

		Timeline: map[string]float64{
			"rush":     1.25,
			"normal":   1.0,
			"flexible": 0.95,
		},
		Scope: map[string]float64{
			"full-renovation":    1.2,
			"partial-renovation": 1.0,
			"fresh-interiors":    1.1,
			"single-room":        0.8,
		},
	}
}
