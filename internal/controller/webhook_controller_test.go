// FILE: internal/controller/webhook_controller_test.go
package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dialogCall struct {
	op     string
	chatID int64
	arg    string
}

type fakeDialog struct {
	calls []dialogCall
}

func (f *fakeDialog) HandleStart(_ context.Context, chatID int64, displayName string) {
	f.calls = append(f.calls, dialogCall{op: "start", chatID: chatID, arg: displayName})
}

func (f *fakeDialog) HandleFieldSelection(_ context.Context, chatID int64, fieldTag string) {
	f.calls = append(f.calls, dialogCall{op: "field", chatID: chatID, arg: fieldTag})
}

func (f *fakeDialog) HandleFreeText(_ context.Context, chatID int64, _ string, text string) {
	f.calls = append(f.calls, dialogCall{op: "text", chatID: chatID, arg: text})
}

func (f *fakeDialog) HandleRestart(_ context.Context, chatID int64, displayName string) {
	f.calls = append(f.calls, dialogCall{op: "restart", chatID: chatID, arg: displayName})
}

func (f *fakeDialog) HandleClose(_ context.Context, chatID int64) {
	f.calls = append(f.calls, dialogCall{op: "close", chatID: chatID})
}

type fakeAnswerer struct {
	answered []string
}

func (f *fakeAnswerer) AnswerCallback(callbackID string) {
	f.answered = append(f.answered, callbackID)
}

func newWebhookApp(t *testing.T) (*fiber.App, *fakeDialog, *fakeAnswerer) {
	t.Helper()
	dialog := &fakeDialog{}
	answerer := &fakeAnswerer{}
	ctrl := NewWebhookController(dialog, answerer, testLogger{})

	app := fiber.New()
	ctrl.RegisterRoutes(app, "/telegram/webhook")
	return app, dialog, answerer
}

func postUpdate(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestWebhookStartCommand(t *testing.T) {
	app, dialog, _ := newWebhookApp(t)

	resp := postUpdate(t, app, `{
		"update_id": 1,
		"message": {
			"message_id": 1,
			"chat": {"id": 42},
			"from": {"id": 7, "first_name": "Marcos"},
			"text": "/start",
			"entities": [{"type": "bot_command", "offset": 0, "length": 6}]
		}
	}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, dialog.calls, 1)
	assert.Equal(t, dialogCall{op: "start", chatID: 42, arg: "Marcos"}, dialog.calls[0])
}

func TestWebhookUnknownCommandIsIgnored(t *testing.T) {
	app, dialog, _ := newWebhookApp(t)

	resp := postUpdate(t, app, `{
		"update_id": 2,
		"message": {
			"message_id": 2,
			"chat": {"id": 42},
			"text": "/help",
			"entities": [{"type": "bot_command", "offset": 0, "length": 5}]
		}
	}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, dialog.calls)
}

func TestWebhookFreeText(t *testing.T) {
	app, dialog, _ := newWebhookApp(t)

	postUpdate(t, app, `{
		"update_id": 3,
		"message": {
			"message_id": 3,
			"chat": {"id": 42},
			"from": {"id": 7, "first_name": "Ana"},
			"text": "joão silva"
		}
	}`)

	require.Len(t, dialog.calls, 1)
	assert.Equal(t, dialogCall{op: "text", chatID: 42, arg: "joão silva"}, dialog.calls[0])
}

func TestWebhookCallbackRouting(t *testing.T) {
	tests := []struct {
		name string
		data string
		want dialogCall
	}{
		{name: "field selection", data: "nome", want: dialogCall{op: "field", chatID: 42, arg: "nome"}},
		{name: "new search", data: "nova_pesquisa", want: dialogCall{op: "restart", chatID: 42, arg: "Ana"}},
		{name: "close", data: "encerrar", want: dialogCall{op: "close", chatID: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, dialog, answerer := newWebhookApp(t)

			postUpdate(t, app, `{
				"update_id": 4,
				"callback_query": {
					"id": "cb-1",
					"from": {"id": 7, "first_name": "Ana"},
					"data": "`+tt.data+`",
					"message": {"message_id": 9, "chat": {"id": 42}}
				}
			}`)

			require.Len(t, dialog.calls, 1)
			assert.Equal(t, tt.want, dialog.calls[0])
			assert.Equal(t, []string{"cb-1"}, answerer.answered)
		})
	}
}

func TestWebhookUnknownCallbackDataIsIgnored(t *testing.T) {
	app, dialog, answerer := newWebhookApp(t)

	postUpdate(t, app, `{
		"update_id": 5,
		"callback_query": {
			"id": "cb-2",
			"from": {"id": 7},
			"data": "cpf",
			"message": {"message_id": 9, "chat": {"id": 42}}
		}
	}`)

	assert.Empty(t, dialog.calls)
	assert.Equal(t, []string{"cb-2"}, answerer.answered, "the spinner is always acknowledged")
}

func TestWebhookMalformedBodyStillReturns200(t *testing.T) {
	app, dialog, _ := newWebhookApp(t)

	resp := postUpdate(t, app, `{not json`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, dialog.calls)
}
