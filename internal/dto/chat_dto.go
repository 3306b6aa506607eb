package dto

// ChatRequest carries one user message. SessionKey identifies a guest
// caller's session; authenticated callers are keyed by their user id
// claim and may omit it.
type ChatRequest struct {
	Message    string `json:"message" validate:"required"`
	SessionKey string `json:"session_key,omitempty"`
}

type ChatResponse struct {
	Response   string `json:"response"`
	SessionKey string `json:"session_key,omitempty"`
}

type ClearConversationRequest struct {
	SessionKey string `json:"session_key,omitempty"`
}

// HistoryResponse is always empty: conversation history is never
// persisted on this side; continuity lives with the generation agent.
type HistoryResponse struct {
	History []string `json:"history"`
}
