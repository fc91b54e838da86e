package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"decormitra/internal/adapter/http/handlers/mocks"
	"decormitra/internal/adapter/http/middleware"
	"decormitra/internal/domain/entities"
	"decormitra/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// withClient injects the client identity the auth middleware would set.
func withClient(clientID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextClientIDKey, clientID)
		c.Next()
	}
}

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing client identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"name":"Asha","phone":"9876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", withClient("client-a"), h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"name":"Asha","phone":"123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for short phone, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", withClient("client-a"), h.CreateLead)

		uc.EXPECT().
			CaptureLead(gomock.Any(), "client-a", gomock.Any()).
			DoAndReturn(func(_ any, clientID string, lead entities.Lead) (entities.Lead, error) {
				lead.ID = "lead-1"
				lead.ClientID = clientID
				lead.Status = entities.LeadStatusNew
				return lead, nil
			})

		body := `{"name":"Asha","phone":"9876543210","email":"asha@example.com","pincode":"400001"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != "lead-1" {
			t.Fatalf("expected lead-1, got %v", got["id"])
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:id", withClient("client-a"), h.GetLead)

		uc.EXPECT().
			GetByID(gomock.Any(), "client-a", "missing").
			Return(entities.Lead{}, usecase.ErrLeadNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:id", withClient("client-a"), h.GetLead)

		uc.EXPECT().
			GetByID(gomock.Any(), "client-a", "lead-1").
			Return(entities.Lead{ID: "lead-1", ClientID: "client-a", Name: "Asha"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	r := gin.New()
	r.GET("/v1/leads", withClient("client-a"), h.ListLeads)

	uc.EXPECT().
		ListByClient(gomock.Any(), "client-a").
		Return([]entities.Lead{{ID: "lead-1"}, {ID: "lead-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/leads", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(got))
	}
}
