package constant

const (
	// MsgTopicDenied is returned when the access policy rejects a
	// (topic, role) pair. The composer is never invoked for these.
	MsgTopicDenied = "Sorry, you don't have permission to ask about that topic."

	// MsgEmptyAnswer covers a successful round trip that produced no text.
	MsgEmptyAnswer = "Sorry, I couldn't generate a response."

	// MsgConversationCleared acknowledges a conversation reset.
	MsgConversationCleared = "Conversation cleared successfully"

	// AuditTopicName is the in-process pub/sub topic for access decisions.
	AuditTopicName = "CHAT_AUDIT"
)
