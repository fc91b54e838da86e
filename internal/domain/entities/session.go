package entities

import "time"

// Chat roles stored on session messages.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

// Session is the conversational state for one visitor. It is a plain
// key-value record: the backend appends messages and passes the transcript
// through to the assistant provider, nothing more.
type Session struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	PersonaID string        `json:"persona_id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
