// Package telegram is the outbound edge of the bot: it wraps the Bot API
// client behind the service.Responder contract so the dialogue never touches
// transport types.
package telegram

import (
	"fmt"

	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	"github.com/marcosalmeidaedp/bot-cliente/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Responder struct {
	bot    *tgbotapi.BotAPI
	logger logger.ILogger
}

// NewResponder authenticates against the Bot API. Fails only on an invalid
// token, which is a startup error.
func NewResponder(botToken string, sysLogger logger.ILogger) (*Responder, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram auth failed: %w", err)
	}
	sysLogger.Info("Telegram", "Bot authenticated", map[string]interface{}{"username": bot.Self.UserName})
	return &Responder{bot: bot, logger: sysLogger}, nil
}

// RegisterWebhook points the Bot API at our public endpoint.
func (r *Responder) RegisterWebhook(publicURL string) error {
	wh, err := tgbotapi.NewWebhook(publicURL)
	if err != nil {
		return err
	}
	if _, err := r.bot.Request(wh); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	r.logger.Info("Telegram", "Webhook registered", map[string]interface{}{"url": publicURL})
	return nil
}

func (r *Responder) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := r.bot.Send(msg)
	return err
}

func (r *Responder) SendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := r.bot.Send(msg)
	return err
}

func (r *Responder) SendKeyboard(chatID int64, text string, rows [][]service.Button) error {
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		keyboard = append(keyboard, buttons)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(keyboard...)
	_, err := r.bot.Send(msg)
	return err
}

// AnswerCallback acknowledges an inline-button press so the client stops
// showing the spinner. Failures are logged and ignored.
func (r *Responder) AnswerCallback(callbackID string) {
	if _, err := r.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		r.logger.Warn("Telegram", "Failed to answer callback", map[string]interface{}{"error": err.Error()})
	}
}
