package response

type ChatResponse struct {
	SessionID string `json:"sessionId"`
	PersonaID string `json:"personaId,omitempty"`
	Reply     string `json:"reply"`
}
