package entities

// Service levels reported by the service-area classifier.
const (
	ServiceLevelPremium  = "premium"
	ServiceLevelStandard = "standard"
)

// ServiceAreaResult is the coverage determination for one pincode. Delivery
// and ServiceLevel are informational and come from the metro-prefix set even
// when the area is not serviceable (used for "we'll notify you" UX).
type ServiceAreaResult struct {
	Serviceable  bool   `json:"serviceable"`
	Delivery     string `json:"delivery"`
	ServiceLevel string `json:"serviceLevel"`
}
