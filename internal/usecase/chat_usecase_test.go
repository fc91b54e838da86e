package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"decormitra/internal/domain/entities"
	"decormitra/internal/domain/pricing"
	mock_interfaces "decormitra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newChatUseCaseForTest(t *testing.T) (*ChatUseCase, *mock_interfaces.MockISessionRepository, *mock_interfaces.MockIAssistantGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	sessions := mock_interfaces.NewMockISessionRepository(ctrl)
	assistant := mock_interfaces.NewMockIAssistantGateway(ctrl)
	quotes := NewQuoteUseCase(pricing.NewEngine(pricing.DefaultTables()))
	return NewChatUseCase(sessions, assistant, quotes), sessions, assistant
}

func TestChatUseCase_SendMessage(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc, _, _ := newChatUseCaseForTest(t)
		_, _, err := uc.SendMessage(context.Background(), "", "", "kavya", "hello")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("empty message after sanitization", func(t *testing.T) {
		uc, _, _ := newChatUseCaseForTest(t)
		_, _, err := uc.SendMessage(context.Background(), "client-a", "", "kavya", "<br/> ")
		if !errors.Is(err, ErrEmptyChatMessage) {
			t.Fatalf("expected ErrEmptyChatMessage, got %v", err)
		}
	})

	t.Run("new session uses persona system prompt", func(t *testing.T) {
		uc, sessions, assistant := newChatUseCaseForTest(t)

		assistant.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, system string, msgs []entities.ChatMessage) (string, error) {
				if !strings.Contains(system, "Kavya Reddy") {
					t.Fatalf("expected persona prompt, got %q", system)
				}
				if len(msgs) != 1 || msgs[0].Role != entities.ChatRoleUser || msgs[0].Content != "hello" {
					t.Fatalf("unexpected transcript: %+v", msgs)
				}
				return "Namaste! What space are we designing?", nil
			},
		)
		sessions.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.ID == "" || s.ClientID != "client-a" || s.PersonaID != "kavya" {
					t.Fatalf("unexpected session: %+v", s)
				}
				if len(s.Messages) != 2 || s.Messages[1].Role != entities.ChatRoleAssistant {
					t.Fatalf("unexpected messages: %+v", s.Messages)
				}
				return s, nil
			},
		)

		session, reply, err := uc.SendMessage(context.Background(), "client-a", "", "Kavya", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply == "" || session.ID == "" {
			t.Fatalf("expected reply and session id")
		}
	})

	t.Run("existing session is continued", func(t *testing.T) {
		uc, sessions, assistant := newChatUseCaseForTest(t)

		existing := entities.Session{
			ID:       "sess-1",
			ClientID: "client-a",
			Messages: []entities.ChatMessage{{Role: entities.ChatRoleUser, Content: "earlier"}},
		}
		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(existing, nil)
		assistant.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("sure", nil)
		sessions.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.ID != "sess-1" || len(s.Messages) != 3 {
					t.Fatalf("unexpected session: %+v", s)
				}
				return s, nil
			},
		)

		_, _, err := uc.SendMessage(context.Background(), "client-a", "sess-1", "", "next question")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("another client's session id starts a fresh session", func(t *testing.T) {
		uc, sessions, assistant := newChatUseCaseForTest(t)

		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Session{ID: "sess-1", ClientID: "client-b"}, nil)
		assistant.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("hi", nil)
		sessions.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.ID == "sess-1" {
					t.Fatalf("expected fresh session id")
				}
				return s, nil
			},
		)

		_, _, err := uc.SendMessage(context.Background(), "client-a", "sess-1", "", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("assistant failure", func(t *testing.T) {
		uc, _, assistant := newChatUseCaseForTest(t)

		assistant.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))

		_, _, err := uc.SendMessage(context.Background(), "client-a", "", "", "hello")
		if !errors.Is(err, ErrAssistantUnavailable) {
			t.Fatalf("expected ErrAssistantUnavailable, got %v", err)
		}
	})
}
