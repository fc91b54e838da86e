package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"decormitra/internal/domain/entities"
	"decormitra/internal/usecase/interfaces"
	"decormitra/pkg/sanitize"

	"github.com/google/uuid"
)

var (
	ErrEmptyChatMessage     = errors.New("empty chat message")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// transcriptLimit bounds how much history is replayed to the provider.
const transcriptLimit = 20

type IChatUseCase interface {
	SendMessage(ctx context.Context, clientID, sessionID, personaID, message string) (entities.Session, string, error)
}

type ChatUseCase struct {
	sessions  interfaces.ISessionRepository
	assistant interfaces.IAssistantGateway
	quotes    IQuoteUseCase
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(sessions interfaces.ISessionRepository, assistant interfaces.IAssistantGateway, quotes IQuoteUseCase) *ChatUseCase {
	return &ChatUseCase{sessions: sessions, assistant: assistant, quotes: quotes}
}

// SendMessage appends the user's message to the session transcript, passes
// the transcript through to the assistant provider with the persona's
// expertise as system prompt, and stores the reply. Conversation logic lives
// entirely with the provider.
func (u *ChatUseCase) SendMessage(ctx context.Context, clientID, sessionID, personaID, message string) (entities.Session, string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Session{}, "", ErrInvalidClientID
	}
	message = sanitize.Text(message)
	if message == "" {
		return entities.Session{}, "", ErrEmptyChatMessage
	}

	session, err := u.resolveSession(ctx, clientID, sessionID, personaID)
	if err != nil {
		return entities.Session{}, "", err
	}

	now := time.Now().UTC()
	session.Messages = append(session.Messages, entities.ChatMessage{
		Role:    entities.ChatRoleUser,
		Content: message,
		SentAt:  now,
	})

	reply, err := u.assistant.Complete(ctx, u.systemPrompt(ctx, session.PersonaID), tail(session.Messages, transcriptLimit))
	if err != nil {
		return entities.Session{}, "", ErrAssistantUnavailable
	}

	session.Messages = append(session.Messages, entities.ChatMessage{
		Role:    entities.ChatRoleAssistant,
		Content: reply,
		SentAt:  time.Now().UTC(),
	})
	session.UpdatedAt = time.Now().UTC()

	saved, err := u.sessions.Put(ctx, session)
	if err != nil {
		return entities.Session{}, "", err
	}
	return saved, reply, nil
}

func (u *ChatUseCase) resolveSession(ctx context.Context, clientID, sessionID, personaID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID != "" {
		session, err := u.sessions.Get(ctx, sessionID)
		if err != nil {
			return entities.Session{}, err
		}
		if session.ID != "" && session.ClientID == clientID {
			return session, nil
		}
	}

	now := time.Now().UTC()
	return entities.Session{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		PersonaID: strings.ToLower(strings.TrimSpace(personaID)),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *ChatUseCase) systemPrompt(ctx context.Context, personaID string) string {
	prompt := "You are a helpful interior design consultant for an Indian home interiors brand. " +
		"Answer briefly and guide the visitor towards a price estimate."
	if persona, ok := u.quotes.GetPersona(ctx, personaID); ok {
		prompt = "You are " + persona.Name + ", an interior design specialist. Expertise: " +
			persona.Expertise + ". Answer briefly and guide the visitor towards a price estimate."
	}
	return prompt
}

func tail(messages []entities.ChatMessage, n int) []entities.ChatMessage {
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
