// Package serviceability classifies geographic coverage by pincode prefix.
package serviceability

import "decormitra/internal/domain/entities"

// Delivery windows reported to callers. Metro prefixes get the shorter
// window and the premium tier.
const (
	deliveryMetro    = "45-60 days"
	deliveryStandard = "60-90 days"
)

const prefixLen = 3

// Classifier resolves a pincode prefix against per-category coverage sets and
// one shared metro-prefix set. Like the pricing tables it is built once at
// startup and read-only afterwards, so concurrent use needs no coordination.
//
// Delivery and service level come from the metro set alone: an uncovered
// metro pincode still reports the premium window. That is deliberate — the
// pair is informational and feeds the "we'll notify you" flow for areas we
// do not serve yet.
type Classifier struct {
	coverage        map[string]map[string]struct{}
	defaultCategory string
	metro           map[string]struct{}
}

// NewClassifier builds a classifier from per-category coverage prefix lists
// and the metro prefix list. Unknown categories fall back to defaultCategory.
func NewClassifier(coverage map[string][]string, defaultCategory string, metro []string) *Classifier {
	c := &Classifier{
		coverage:        make(map[string]map[string]struct{}, len(coverage)),
		defaultCategory: defaultCategory,
		metro:           toSet(metro),
	}
	for category, prefixes := range coverage {
		c.coverage[category] = toSet(prefixes)
	}
	return c
}

// DefaultClassifier returns the production coverage model.
func DefaultClassifier() *Classifier {
	return NewClassifier(map[string][]string{
		"interiors": {
			"400", "401", "410", "411",
			"110", "122", "201",
			"560", "562",
			"600", "500", "700",
		},
		"modular-kitchen": {
			"400", "110", "122", "201", "560", "600", "500", "411",
		},
		"full-home": {
			"400", "110", "122", "560", "411",
		},
	}, "interiors", []string{
		"400", "110", "122", "201", "560", "600", "500", "411", "700",
	})
}

// Classify reports coverage for a pincode and service category. The caller
// validates that pincode is an exact 6-digit numeric string; this function
// only extracts the prefix.
func (c *Classifier) Classify(pincode, serviceCategory string) entities.ServiceAreaResult {
	prefix := pincode
	if len(prefix) > prefixLen {
		prefix = prefix[:prefixLen]
	}

	set, ok := c.coverage[serviceCategory]
	if !ok {
		set = c.coverage[c.defaultCategory]
	}
	_, serviceable := set[prefix]

	result := entities.ServiceAreaResult{
		Serviceable:  serviceable,
		Delivery:     deliveryStandard,
		ServiceLevel: entities.ServiceLevelStandard,
	}
	if _, isMetro := c.metro[prefix]; isMetro {
		result.Delivery = deliveryMetro
		result.ServiceLevel = entities.ServiceLevelPremium
	}
	return result
}
