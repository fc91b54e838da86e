// Package sheets forwards captured leads to a client-specific spreadsheet
// webhook (Apps Script style endpoint appending one row per lead).
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"decormitra/internal/domain/entities"
	"decormitra/internal/logging"
	"decormitra/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrMissingSheetWebhookURL = errors.New("missing SHEET_WEBHOOK_URL")

const defaultTimeout = 10 * time.Second

// leadRow is the flat record the spreadsheet endpoint expects.
type leadRow struct {
	LeadID          string `json:"lead_id"`
	Client          string `json:"client"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Pincode         string `json:"pincode"`
	ProjectCategory string `json:"project_category"`
	EstimatedBudget int64  `json:"estimated_budget"`
	Notes           string `json:"notes"`
	CapturedAt      string `json:"captured_at"`
}

type WebhookExporter struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.ILeadExporter = (*WebhookExporter)(nil)

// NewWebhookExporter builds the exporter from SHEET_WEBHOOK_URL. Mock mode
// (SHEET_EXPORT_MOCK) logs rows instead of posting them, for local runs and
// tests without a spreadsheet endpoint.
func NewWebhookExporter(baseURL string) (*WebhookExporter, error) {
	if isSheetExportMockEnabled() {
		logging.Logger.Info("sheet exporter mock mode enabled")
		return &WebhookExporter{mockMode: true}, nil
	}
	if baseURL == "" {
		return nil, ErrMissingSheetWebhookURL
	}
	return &WebhookExporter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

func (e *WebhookExporter) ExportLead(ctx context.Context, lead entities.Lead) error {
	row := toLeadRow(lead)

	if e.mockMode {
		logging.Logger.Info("mock sheet export",
			zap.String("lead_id", row.LeadID),
			zap.String("client", row.Client),
		)
		return nil
	}

	body, err := json.Marshal(row)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sheet webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func toLeadRow(lead entities.Lead) leadRow {
	return leadRow{
		LeadID:          lead.ID,
		Client:          lead.ClientID,
		Name:            lead.Name,
		Phone:           lead.Phone,
		Email:           lead.Email,
		Pincode:         lead.Pincode,
		ProjectCategory: lead.ProjectCategory,
		EstimatedBudget: lead.EstimatedBudget,
		Notes:           lead.Notes,
		CapturedAt:      lead.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func isSheetExportMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SHEET_EXPORT_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
