// FILE: internal/service/audit_service.go
package service

import (
	"context"
	"encoding/json"

	"campus-chatbot-be/internal/constant"
	"campus-chatbot-be/internal/pkg/logger"
	"campus-chatbot-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Access decisions are published on an in-process bus and consumed by a
// background worker, so the request path never blocks on audit logging.

type IAuditPublisher interface {
	Publish(event events.Event)
}

type auditPublisher struct {
	pubSub *gochannel.GoChannel
	topic  string
}

func NewAuditPublisher(pubSub *gochannel.GoChannel) IAuditPublisher {
	return &auditPublisher{pubSub: pubSub, topic: constant.AuditTopicName}
}

type auditEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt string                 `json:"occurred_at"`
}

func (p *auditPublisher) Publish(event events.Event) {
	envelope := auditEnvelope{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp().Format("2006-01-02T15:04:05Z07:00"),
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	_ = p.pubSub.Publish(p.topic, msg)
}

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

type auditConsumerService struct {
	pubSub *gochannel.GoChannel
	topic  string
	logger logger.ILogger
}

func NewAuditConsumerService(pubSub *gochannel.GoChannel, log logger.ILogger) IAuditConsumerService {
	return &auditConsumerService{
		pubSub: pubSub,
		topic:  constant.AuditTopicName,
		logger: log,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *auditConsumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var envelope auditEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Warn("audit", "dropping malformed audit event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	details := envelope.Payload
	if details == nil {
		details = map[string]interface{}{}
	}
	details["occurred_at"] = envelope.OccurredAt
	cs.logger.Info("audit", envelope.Type, details)
}
