package response

import "decormitra/internal/domain/entities"

type ServiceabilityResponse struct {
	Serviceable  bool   `json:"serviceable"`
	Delivery     string `json:"delivery"`
	ServiceLevel string `json:"serviceLevel"`
}

func FromServiceArea(r entities.ServiceAreaResult) ServiceabilityResponse {
	return ServiceabilityResponse{
		Serviceable:  r.Serviceable,
		Delivery:     r.Delivery,
		ServiceLevel: r.ServiceLevel,
	}
}
