package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"decormitra/internal/adapter/http/handlers/mocks"
	"decormitra/internal/domain/entities"
	"decormitra/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChatHandler_SendMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IChatUseCase) *gin.Engine {
		h := NewChatHandler(uc)
		r := gin.New()
		r.POST("/v1/chat", withClient("client-a"), h.SendMessage)
		return r
	}

	t.Run("missing message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"personaId":"kavya"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reply with minted session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)

		uc.EXPECT().
			SendMessage(gomock.Any(), "client-a", "", "kavya", "What suits a 2BHK?").
			Return(entities.Session{ID: "sess-1", ClientID: "client-a", PersonaID: "kavya"}, "Layered lighting works well.", nil)

		body := `{"personaId":"kavya","message":"What suits a 2BHK?"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["sessionId"] != "sess-1" {
			t.Fatalf("expected sess-1, got %v", got["sessionId"])
		}
		if got["reply"] != "Layered lighting works well." {
			t.Fatalf("unexpected reply %v", got["reply"])
		}
	})

	t.Run("assistant outage maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)

		uc.EXPECT().
			SendMessage(gomock.Any(), "client-a", "sess-1", "kavya", "hello").
			Return(entities.Session{}, "", usecase.ErrAssistantUnavailable)

		body := `{"sessionId":"sess-1","personaId":"kavya","message":"hello"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
