package response

import (
	"time"

	"decormitra/internal/domain/entities"
)

type LeadResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	Pincode         string    `json:"pincode,omitempty"`
	ProjectCategory string    `json:"projectCategory,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	EstimatedBudget int64     `json:"estimatedBudget,omitempty"`
	Status          string    `json:"status"`
	Exported        bool      `json:"exported"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:              l.ID,
		Name:            l.Name,
		Phone:           l.Phone,
		Email:           l.Email,
		Pincode:         l.Pincode,
		ProjectCategory: l.ProjectCategory,
		Notes:           l.Notes,
		EstimatedBudget: l.EstimatedBudget,
		Status:          string(l.Status),
		Exported:        l.Exported,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}
