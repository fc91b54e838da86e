package response

import "decormitra/internal/domain/entities"

type PersonaResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Expertise  string  `json:"expertise"`
	Multiplier float64 `json:"multiplier"`
}

func FromPersonas(personas []entities.Persona) []PersonaResponse {
	out := make([]PersonaResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, PersonaResponse{
			ID:         string(p.ID),
			Name:       p.Name,
			Expertise:  p.Expertise,
			Multiplier: p.Multiplier,
		})
	}
	return out
}
