package service

import (
	"context"
	"encoding/json"

	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IAuditService records query events. Recording is fire-and-forget: a
// failure here must never interrupt the conversation, so errors are logged
// and swallowed.
type IAuditService interface {
	RecordQuery(ctx context.Context, event events.QueryPerformed)
}

type auditService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewAuditService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    sysLogger,
	}
}

func (s *auditService) RecordQuery(ctx context.Context, event events.QueryPerformed) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Audit", "Failed to marshal query event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Error("Audit", "Failed to publish query event", map[string]interface{}{"error": err.Error()})
	}
}
