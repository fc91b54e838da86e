package request

// ChatRequest is one turn of the assistant conversation. SessionID is empty
// on the first turn; the backend mints one and returns it.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	PersonaID string `json:"personaId"`
	Message   string `json:"message" binding:"required"`
}
