package contract

// ConversationRepository stores the opaque conversation identifier that
// scopes a caller's multi-turn exchange with the generation agent. One
// logical writer per session key; entries expire with the session.
type ConversationRepository interface {
	Get(sessionKey string) (string, bool)
	Save(sessionKey, conversationID string)
	Delete(sessionKey string)
}
