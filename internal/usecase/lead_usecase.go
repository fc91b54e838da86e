package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"decormitra/internal/domain/entities"
	"decormitra/internal/logging"
	"decormitra/internal/usecase/interfaces"
	"decormitra/pkg/sanitize"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrInvalidLeadName = errors.New("invalid lead name")
	ErrInvalidLeadID   = errors.New("invalid lead id")
)

type ILeadUseCase interface {
	CaptureLead(ctx context.Context, clientID string, lead entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, clientID, id string) (entities.Lead, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Lead, error)
}

type LeadUseCase struct {
	repo     interfaces.ILeadRepository
	exporter interfaces.ILeadExporter
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, exporter interfaces.ILeadExporter) *LeadUseCase {
	return &LeadUseCase{repo: repo, exporter: exporter}
}

// CaptureLead persists a lead for the authenticated client and forwards it to
// the client's spreadsheet. The forward is best-effort: an export failure is
// logged and the lead stays stored with Exported=false.
func (u *LeadUseCase) CaptureLead(ctx context.Context, clientID string, lead entities.Lead) (entities.Lead, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Lead{}, ErrInvalidClientID
	}

	lead.Name = sanitize.Text(lead.Name)
	lead.Notes = sanitize.Text(lead.Notes)
	lead.Phone = strings.TrimSpace(lead.Phone)
	lead.Email = strings.TrimSpace(lead.Email)
	if lead.Name == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}

	now := time.Now().UTC()
	lead.ID = uuid.NewString()
	lead.ClientID = clientID
	lead.Status = entities.LeadStatusNew
	lead.Exported = false
	lead.CreatedAt = now
	lead.UpdatedAt = now

	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}

	if u.exporter != nil {
		if err := u.exporter.ExportLead(ctx, created); err != nil {
			logging.Logger.Warn("lead export failed",
				zap.String("lead_id", created.ID),
				zap.String("client_id", clientID),
				zap.Error(err),
			)
			return created, nil
		}
		if updated, err := u.repo.MarkExported(ctx, created.ID); err == nil && updated.ID != "" {
			return updated, nil
		}
	}
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, clientID, id string) (entities.Lead, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Lead{}, ErrInvalidClientID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	lead, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	// Tenancy boundary: a lead from another client is indistinguishable from
	// a missing one.
	if lead.ID == "" || lead.ClientID != clientID {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func (u *LeadUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Lead, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClient(ctx, clientID)
}
