package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/events"
	pktNats "github.com/marcosalmeidaedp/bot-cliente/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// AuditBroadcaster fans an audit event out to live ops listeners.
type AuditBroadcaster interface {
	BroadcastAudit(payload []byte)
}

// IConsumerService drains the audit topic in the background.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the single subscriber of the audit topic. Per event it
// appends a JSON line to the rotated audit file, mirrors to NATS when
// configured, and pushes to the ops websocket hub. Every sink failure is
// logged and swallowed.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	auditWriter io.Writer
	natsPub     *pktNats.Publisher
	broadcaster AuditBroadcaster
	logger      logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditWriter io.Writer,
	natsPub *pktNats.Publisher,
	broadcaster AuditBroadcaster,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		auditWriter: auditWriter,
		natsPub:     natsPub,
		broadcaster: broadcaster,
		logger:      sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Audit is best-effort: always Ack, a lost entry must not replay into
	// the conversation path.
	defer msg.Ack()

	var event events.QueryPerformed
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("AuditConsumer", "Failed to unmarshal audit event", map[string]interface{}{"error": err.Error()})
		return
	}

	if cs.auditWriter != nil {
		line := append(append([]byte(nil), msg.Payload...), '\n')
		if _, err := cs.auditWriter.Write(line); err != nil {
			cs.logger.Error("AuditConsumer", "Failed to append audit log", map[string]interface{}{"error": err.Error()})
		}
	}

	if cs.natsPub != nil {
		if err := cs.natsPub.Publish(ctx, event); err != nil {
			cs.logger.Warn("AuditConsumer", "Failed to mirror event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}

	if cs.broadcaster != nil {
		cs.broadcaster.BroadcastAudit(msg.Payload)
	}
}
