package request

import (
	"bytes"
	"encoding/json"

	"decormitra/internal/domain/entities"
)

// FlexibleString accepts a JSON string or a JSON number and stores the raw
// text either way. Clients send areaSqft both ways; the engine parses and
// defaults downstream, so the DTO only preserves the literal.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexibleString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexibleString(num.String())
	return nil
}

// QuoteRequest is the questionnaire payload. Every field is optional: the
// engine resolves absent values to documented defaults, so a partially
// answered questionnaire still prices.
type QuoteRequest struct {
	ProjectCategory string         `json:"projectCategory"`
	FinishTier      string         `json:"finishTier"`
	AreaSqft        FlexibleString `json:"areaSqft"`
	PersonaID       string         `json:"personaId"`
	Flooring        string         `json:"flooring"`
	Kitchen         string         `json:"kitchen"`
	Lighting        string         `json:"lighting"`
	Paint           string         `json:"paint"`
	Furniture       string         `json:"furniture"`
	Timeline        string         `json:"timeline"`
	ProjectScope    string         `json:"projectScope"`
	Pincode         string         `json:"pincode" binding:"omitempty,pincode"`
}

func (r QuoteRequest) ToQuestionnaire() entities.QuestionnaireResponse {
	return entities.QuestionnaireResponse{
		ProjectCategory: r.ProjectCategory,
		FinishTier:      r.FinishTier,
		AreaSqft:        string(r.AreaSqft),
		Flooring:        r.Flooring,
		Kitchen:         r.Kitchen,
		Lighting:        r.Lighting,
		Paint:           r.Paint,
		Furniture:       r.Furniture,
		Timeline:        r.Timeline,
		ProjectScope:    r.ProjectScope,
		Pincode:         r.Pincode,
	}
}

// ServiceabilityQuery binds the coverage-check query string. Pincode format
// is enforced here; the classifier itself assumes a well-formed value.
type ServiceabilityQuery struct {
	Pincode  string `form:"pincode" binding:"required,pincode"`
	Category string `form:"category"`
}
