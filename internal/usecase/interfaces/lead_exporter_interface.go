package interfaces

import (
	"context"

	"decormitra/internal/domain/entities"
)

// ILeadExporter forwards a captured lead to the client's external
// spreadsheet. Export failures are surfaced to the caller but must never
// fail the capture itself; the lead stays persisted with exported=false.
type ILeadExporter interface {
	ExportLead(ctx context.Context, lead entities.Lead) error
}
