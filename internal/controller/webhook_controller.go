// FILE: internal/controller/webhook_controller.go
package controller

import (
	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	"github.com/marcosalmeidaedp/bot-cliente/internal/service"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
)

// CallbackAnswerer acknowledges inline-button presses so the Telegram client
// stops its spinner.
type CallbackAnswerer interface {
	AnswerCallback(callbackID string)
}

type IWebhookController interface {
	RegisterRoutes(app fiber.Router, path string)
	Handle(ctx *fiber.Ctx) error
}

type webhookController struct {
	dialog   service.IDialogService
	answerer CallbackAnswerer
	logger   logger.ILogger
}

func NewWebhookController(dialog service.IDialogService, answerer CallbackAnswerer, sysLogger logger.ILogger) IWebhookController {
	return &webhookController{
		dialog:   dialog,
		answerer: answerer,
		logger:   sysLogger,
	}
}

func (c *webhookController) RegisterRoutes(app fiber.Router, path string) {
	app.Post(path, c.Handle)
}

// Handle receives one Telegram update and routes it through the dialogue.
// Updates are processed synchronously: Telegram delivers per-chat updates in
// order, and fiber already runs requests for different chats concurrently.
// The response is always 200 — a non-2xx would make Telegram redeliver the
// same update forever.
func (c *webhookController) Handle(ctx *fiber.Ctx) error {
	var update tgbotapi.Update
	if err := ctx.BodyParser(&update); err != nil {
		c.logger.Warn("Webhook", "Unparseable update", map[string]interface{}{"error": err.Error()})
		return ctx.SendString("OK")
	}

	switch {
	case update.CallbackQuery != nil:
		c.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		c.handleMessage(ctx, update.Message)
	}

	return ctx.SendString("OK")
}

func (c *webhookController) handleMessage(ctx *fiber.Ctx, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	displayName := ""
	if msg.From != nil {
		displayName = msg.From.FirstName
	}

	if msg.IsCommand() {
		if msg.Command() == "start" {
			c.dialog.HandleStart(ctx.UserContext(), chatID, displayName)
		}
		// Unknown commands fall through silently like the original bot.
		return
	}

	if msg.Text != "" {
		c.dialog.HandleFreeText(ctx.UserContext(), chatID, displayName, msg.Text)
	}
}

func (c *webhookController) handleCallback(ctx *fiber.Ctx, cb *tgbotapi.CallbackQuery) {
	if c.answerer != nil {
		c.answerer.AnswerCallback(cb.ID)
	}
	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	displayName := ""
	if cb.From != nil {
		displayName = cb.From.FirstName
	}

	switch cb.Data {
	case service.CallbackNewSearch:
		c.dialog.HandleRestart(ctx.UserContext(), chatID, displayName)
	case service.CallbackClose:
		c.dialog.HandleClose(ctx.UserContext(), chatID)
	default:
		if _, ok := store.ParseField(cb.Data); ok {
			c.dialog.HandleFieldSelection(ctx.UserContext(), chatID, cb.Data)
		}
	}
}
