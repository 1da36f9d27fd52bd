package handler

import (
	"os"

	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	internalWS "github.com/marcosalmeidaedp/bot-cliente/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuditStreamHandler upgrades ops consoles to a websocket fed with the live
// audit trail.
type AuditStreamHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewAuditStreamHandler(hub *internalWS.Hub, log logger.ILogger) *AuditStreamHandler {
	return &AuditStreamHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *AuditStreamHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/audit", h.ServeWs)
}

// ServeWs authenticates the handshake and hijacks the connection.
func (h *AuditStreamHandler) ServeWs(c *fiber.Ctx) error {
	// Query param first (browser clients cannot set headers on upgrade),
	// Authorization header as fallback for tooling.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("AuditStream", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("AuditStream", "WebSocket session started", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("AuditStream", "WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
