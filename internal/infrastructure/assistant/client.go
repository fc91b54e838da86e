// Package assistant is the pass-through to the language-model provider over
// its OpenAI-compatible chat-completions API. No conversational logic lives
// here; the transcript goes in, the reply text comes out.
package assistant

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
)

var ErrMissingAssistantAPIKey = errors.New("missing ASSISTANT_API_KEY")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Client struct {
	config   Config
	client   *http.Client
	mockMode bool
}

var _ interfaces.IAssistantGateway = (*Client)(nil)

// NewClient builds the provider client. Mock mode (ASSISTANT_MOCK) returns a
// canned reply so the chat flow works without provider credentials.
func NewClient(cfg Config) (*Client, error) {
	if isAssistantMockEnabled() {
		logging.Logger.Info("assistant mock mode enabled")
		return &Client{mockMode: true}, nil
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAssistantAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error interface{} `json:"error"`
}

func (c *Client) Complete(ctx context.Context, systemPrompt string, messages []entities.ChatMessage) (string, error) {
	if c.mockMode {
		return "Thanks! Based on what you've shared I can put together an estimate — could you tell me the carpet area of your home?", nil
	}

	payload := map[string]interface{}{
		"model":    c.config.Model,
		"messages": convertMessages(systemPrompt, messages),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %v", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("assistant api error: %v", result.Error)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("assistant api error: empty choices")
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

func convertMessages(systemPrompt string, messages []entities.ChatMessage) []chatMessage {
	out := make([]chatMessage, 0, len(messages)+1)
	if systemPrompt != "" {
		out = append(out, chatMessage{Role: "system", Content: systemPrompt})
	}
	for _, m := range messages {
		role := "user"
		if m.Role == entities.ChatRoleAssistant {
			role = "assistant"
		}
		out = append(out, chatMessage{Role: role, Content: m.Content})
	}
	return out
}

func isAssistantMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ASSISTANT_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
