// Package websocket streams the live audit trail to connected ops consoles.
package websocket

import (
	"context"
	"sync"

	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// auditChannel is the redis pub/sub channel used to share audit events
// across instances behind one load balancer.
const auditChannel = "audit_events"

type Hub struct {
	// Registered ops clients.
	clients map[*Client]struct{}

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out. nil = single instance.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Ops client registered", map[string]interface{}{"clients": h.ClientCount()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Ops client unregistered", map[string]interface{}{"clients": h.ClientCount()})
		}
	}
}

// BroadcastAudit pushes one serialized audit event to every connected ops
// client. With redis configured the event goes through the shared channel so
// every instance (this one included) delivers it exactly once; without redis
// it goes straight to the local clients.
func (h *Hub) BroadcastAudit(payload []byte) {
	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), auditChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed, delivering locally", map[string]interface{}{"error": err.Error()})
			h.sendLocal(payload)
		}
		return
	}
	h.sendLocal(payload)
}

func (h *Hub) sendLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			// Slow consumer; drop the event rather than block the pipeline.
			h.logger.Warn("Hub", "Client send buffer full, dropping event", nil)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// subscribeToRedis feeds events from the shared channel to the local
// clients. Locally published events arrive here too, which is how they reach
// local clients in redis mode.
func (h *Hub) subscribeToRedis() {
	sub := h.rdb.Subscribe(context.Background(), auditChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		h.sendLocal([]byte(msg.Payload))
	}
}
