package interfaces

import (
	"context"

	"decormitra/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// The backend must be able to:
//   - create a lead when the questionnaire qualifies a prospect
//   - fetch a single lead for the owning client
//   - list a client's leads for the agent dashboard
//   - flip the exported flag once the spreadsheet forward succeeds
type ILeadRepository interface {
	Create(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Lead, error)
	MarkExported(ctx context.Context, id string) (entities.Lead, error)
}
