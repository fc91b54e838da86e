package interfaces

import (
	"context"

	"decormitra/internal/domain/entities"
)

// IAssistantGateway is the pass-through to the language-model provider. The
// transcript goes in, the assistant's reply text comes out; no dialogue
// logic lives on this side of the boundary.
type IAssistantGateway interface {
	Complete(ctx context.Context, systemPrompt string, messages []entities.ChatMessage) (string, error)
}
