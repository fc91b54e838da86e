package request

import "decormitra/internal/domain/entities"

// LeadRequest is the lead-capture payload. Free-text fields are sanitized by
// the use case before storage; shape validation happens here via binding.
type LeadRequest struct {
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone" binding:"required,min=10,max=15"`
	Email           string `json:"email" binding:"omitempty,email"`
	Pincode         string `json:"pincode" binding:"omitempty,pincode"`
	ProjectCategory string `json:"projectCategory"`
	Notes           string `json:"notes"`
	EstimatedBudget int64  `json:"estimatedBudget" binding:"omitempty,gte=0"`
}

func (r LeadRequest) ToLead() entities.Lead {
	return entities.Lead{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Pincode:         r.Pincode,
		ProjectCategory: r.ProjectCategory,
		Notes:           r.Notes,
		EstimatedBudget: r.EstimatedBudget,
	}
}
