package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_AUDIT").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent embeds the common event plumbing.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const ChatAuditEventType = "CHAT_AUDIT"

// NewChatAudit records one access decision: which topic a caller asked
// about, what role they held, and whether the policy let it through.
// The raw query text is deliberately not part of the payload.
func NewChatAudit(role, department, intent string, allowed bool, conversationID string) Event {
	return BaseEvent{
		Type: ChatAuditEventType,
		Data: map[string]interface{}{
			"role":            role,
			"department":      department,
			"intent":          intent,
			"allowed":         allowed,
			"conversation_id": conversationID,
		},
		OccurredAt: time.Now(),
	}
}
