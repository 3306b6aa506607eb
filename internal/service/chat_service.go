// FILE: internal/service/chat_service.go
package service

import (
	"context"

	"campus-chatbot-be/internal/constant"
	"campus-chatbot-be/internal/entity"
	"campus-chatbot-be/internal/pkg/logger"
	"campus-chatbot-be/pkg/assist/access"
	"campus-chatbot-be/pkg/assist/intent"
	"campus-chatbot-be/pkg/assist/keyword"
	"campus-chatbot-be/pkg/assist/match"
	"campus-chatbot-be/pkg/assist/prompt"
	"campus-chatbot-be/pkg/assist/session"
	"campus-chatbot-be/pkg/bedrock"
	"campus-chatbot-be/pkg/events"
	"campus-chatbot-be/pkg/records"
)

// Caller is the resolved identity of the person asking. Guests carry an
// empty department and may carry an empty name.
type Caller struct {
	SessionKey string
	FullName   string
	Role       entity.UserRole
	Department entity.Department
}

type IChatService interface {
	Chat(ctx context.Context, caller Caller, message string) string
	ClearConversation(sessionKey string)
	History(sessionKey string) []string
}

type chatService struct {
	sessions  *session.Manager
	source    records.Source
	strategy  match.Strategy
	generator bedrock.Generator
	audit     IAuditPublisher
	logger    logger.ILogger
}

func NewChatService(
	sessions *session.Manager,
	source records.Source,
	strategy match.Strategy,
	generator bedrock.Generator,
	audit IAuditPublisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:  sessions,
		source:    source,
		strategy:  strategy,
		generator: generator,
		audit:     audit,
		logger:    log,
	}
}

// Chat runs one question through the full pipeline: topic classification,
// access gating, record lookup, instruction composition, and the
// generation round trip. Every failure mode resolves to a user-facing
// string; callers never see an error.
func (s *chatService) Chat(ctx context.Context, caller Caller, message string) string {
	topic := intent.Classify(message)

	if !access.Allowed(topic, caller.Role) {
		s.publishAudit(caller, topic, false, "")
		return constant.MsgTopicDenied
	}

	conversationID := s.sessions.LoadOrCreate(caller.SessionKey)

	var matched []records.Record
	if caller.Role != entity.UserRoleGuest {
		recs := s.source.Load(caller.Department)
		keywords := keyword.Extract(message)
		matched = s.strategy.Match(recs, keywords, message)
	}

	instruction := prompt.
		NewBuilder(caller.Role, caller.Department, caller.FullName, message).
		WithMatchedRecords(matched).
		Build()

	// Department scoping is enforced through the instruction block, so no
	// retrieval metadata filter is attached.
	result := s.generator.Generate(ctx, instruction, conversationID, nil)

	s.publishAudit(caller, topic, true, conversationID)

	if result.Failed() {
		s.logger.Warn("chat", "generation failed", map[string]interface{}{
			"category":        string(result.Failure.Category),
			"code":            result.Failure.Code,
			"conversation_id": conversationID,
		})
		return result.Failure.UserMessage()
	}
	if result.Text == "" {
		return constant.MsgEmptyAnswer
	}
	return result.Text
}

// ClearConversation drops the caller's conversation identifier; the next
// question starts a fresh exchange with the agent.
func (s *chatService) ClearConversation(sessionKey string) {
	s.sessions.Clear(sessionKey)
}

// History always reports an empty transcript: multi-turn context lives
// inside the generation agent, keyed by the conversation identifier, and
// is never mirrored locally.
func (s *chatService) History(_ string) []string {
	return []string{}
}

func (s *chatService) publishAudit(caller Caller, topic intent.Intent, allowed bool, conversationID string) {
	s.audit.Publish(events.NewChatAudit(
		string(caller.Role),
		string(caller.Department),
		string(topic),
		allowed,
		conversationID,
	))
}
