package entities

import "time"

// LeadStatus represents the lifecycle of a captured lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusQualified LeadStatus = "qualified"
)

// Lead is a qualified prospect captured for a tenant (client). Leads are
// persisted in DynamoDB and forwarded best-effort to the client's spreadsheet
// webhook; Exported tracks whether the forward has succeeded yet.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Lead struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"client_id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	Pincode         string     `json:"pincode"`
	ProjectCategory string     `json:"project_category"`
	Notes           string     `json:"notes"`
	EstimatedBudget int64      `json:"estimated_budget"`
	Status          LeadStatus `json:"status"`
	Exported        bool       `json:"exported"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
