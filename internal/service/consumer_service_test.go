package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/marcosalmeidaedp/bot-cliente/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type chanBroadcaster struct {
	payloads chan []byte
}

func (b *chanBroadcaster) BroadcastAudit(payload []byte) {
	b.payloads <- payload
}

func TestAuditEventFlowsThroughToSinks(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	fileSink := &syncBuffer{}
	broadcaster := &chanBroadcaster{payloads: make(chan []byte, 1)}

	consumer := NewConsumerService(pubSub, "audit_test", fileSink, nil, broadcaster, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	audit := NewAuditService(pubSub, "audit_test", nopLogger{})
	event := events.NewQueryPerformed(42, "Marcos", "nome", "silva", events.OutcomeMatch, 2)
	audit.RecordQuery(ctx, event)

	select {
	case payload := <-broadcaster.payloads:
		var got events.QueryPerformed
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, event.ChatID, got.ChatID)
		assert.Equal(t, "silva", got.NormalizedQuery)
		assert.Equal(t, events.OutcomeMatch, got.Outcome)
		assert.Equal(t, 2, got.ResultCount)
	case <-time.After(2 * time.Second):
		t.Fatal("audit event never reached the broadcaster")
	}

	// The file line is written before the broadcast in the same goroutine.
	line := fileSink.String()
	assert.True(t, strings.HasSuffix(line, "\n"), "audit file entries are JSON lines")
	assert.Contains(t, line, `"normalized_query":"silva"`)
}

func TestConsumerIgnoresMalformedPayloads(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	fileSink := &syncBuffer{}
	broadcaster := &chanBroadcaster{payloads: make(chan []byte, 2)}

	consumer := NewConsumerService(pubSub, "audit_test", fileSink, nil, broadcaster, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, pubSub.Publish("audit_test", newRawMessage(t, []byte("{not json"))))

	audit := NewAuditService(pubSub, "audit_test", nopLogger{})
	audit.RecordQuery(ctx, events.NewQueryPerformed(1, "", "medidor", "m1", events.OutcomeNoMatch, 0))

	select {
	case payload := <-broadcaster.payloads:
		assert.Contains(t, string(payload), `"no_match"`, "only the valid event is delivered")
	case <-time.After(2 * time.Second):
		t.Fatal("valid event stalled behind the malformed one")
	}
	assert.NotContains(t, fileSink.String(), "{not json")
}

func newRawMessage(t *testing.T, payload []byte) *message.Message {
	t.Helper()
	return message.NewMessage(watermill.NewUUID(), payload)
}
