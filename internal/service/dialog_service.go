package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	"github.com/marcosalmeidaedp/bot-cliente/internal/repository/memory"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/events"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/normalize"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/search"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"
)

// Button is one inline choice offered to the user.
type Button struct {
	Label string
	Data  string
}

// Responder delivers outbound messages. The dialogue never fails on a send
// error; the transport logs it and the conversation moves on.
type Responder interface {
	SendText(chatID int64, text string) error
	SendMarkdown(chatID int64, text string) error
	SendKeyboard(chatID int64, text string, rows [][]Button) error
}

// Callback tags for the restart/close choice after results.
const (
	CallbackNewSearch = "nova_pesquisa"
	CallbackClose     = "encerrar"
)

// maxRenderedResults caps the records rendered for one query so a broad
// query cannot produce an unbounded reply.
const maxRenderedResults = 10

const (
	msgChooseFieldFirst = "Por favor, escolha um tipo de pesquisa primeiro usando o comando /start."
	msgNoResults        = "Nenhum resultado encontrado. Tente novamente."
	msgAfterResults     = "O que deseja fazer agora?"
	msgFarewell         = "Pesquisa encerrada. Até logo! 👋"
)

var fieldPrompts = map[store.Field]string{
	store.FieldNome:       "Digite o nome que deseja pesquisar:",
	store.FieldInstalacao: "Digite o número da instalação que deseja pesquisar:",
	store.FieldMedidor:    "Digite o número do medidor que deseja pesquisar:",
}

// IDialogService is the per-user conversation state machine. Every method
// handles one inbound event and always produces at least one outbound
// message; nothing a user types can error out of the conversation.
type IDialogService interface {
	HandleStart(ctx context.Context, chatID int64, displayName string)
	HandleFieldSelection(ctx context.Context, chatID int64, tag string)
	HandleFreeText(ctx context.Context, chatID int64, displayName, text string)
	HandleRestart(ctx context.Context, chatID int64, displayName string)
	HandleClose(ctx context.Context, chatID int64)
}

type dialogService struct {
	sessions  *memory.SessionRepository
	engine    *search.Engine
	responder Responder
	audit     IAuditService
	logger    logger.ILogger
}

func NewDialogService(
	sessions *memory.SessionRepository,
	engine *search.Engine,
	responder Responder,
	audit IAuditService,
	sysLogger logger.ILogger,
) IDialogService {
	return &dialogService{
		sessions:  sessions,
		engine:    engine,
		responder: responder,
		audit:     audit,
		logger:    sysLogger,
	}
}

// HandleStart greets the user and offers the field choice. Valid from any
// state; it always resets the session to idle.
func (s *dialogService) HandleStart(ctx context.Context, chatID int64, displayName string) {
	unlock := s.sessions.Lock(chatID)
	defer unlock()

	session := s.sessions.Get(chatID)
	session.Reset()
	s.sessions.Save(session)

	s.sendFieldChoice(chatID, displayName)
}

// HandleFieldSelection stores the chosen field and prompts for the query.
func (s *dialogService) HandleFieldSelection(ctx context.Context, chatID int64, tag string) {
	field, ok := store.ParseField(tag)
	if !ok {
		// Unknown callback data; re-prompt rather than stay silent.
		s.send(chatID, msgChooseFieldFirst)
		return
	}

	unlock := s.sessions.Lock(chatID)
	defer unlock()

	session := s.sessions.Get(chatID)
	session.SelectedField = field
	session.Phase = store.PhaseAwaitingQuery
	s.sessions.Save(session)

	s.send(chatID, fieldPrompts[field])
}

// HandleFreeText resolves a query when a field is selected, or re-prompts
// for a field when none is. Empty results keep the session awaiting a query
// so the user can retry without reselecting the field.
func (s *dialogService) HandleFreeText(ctx context.Context, chatID int64, displayName, text string) {
	unlock := s.sessions.Lock(chatID)
	defer unlock()

	session := s.sessions.Get(chatID)
	if session.SelectedField == store.FieldNone {
		s.send(chatID, msgChooseFieldFirst)
		return
	}

	normalized := normalize.Normalize(text)
	results := s.engine.Search(session.SelectedField, text)
	session.LastQuery = normalized

	if len(results) == 0 {
		session.Phase = store.PhaseAwaitingQuery
		s.sessions.Save(session)
		s.audit.RecordQuery(ctx, events.NewQueryPerformed(
			chatID, displayName, string(session.SelectedField), normalized, events.OutcomeNoMatch, 0))
		s.send(chatID, msgNoResults)
		return
	}

	session.Phase = store.PhaseResultsShown
	s.sessions.Save(session)
	s.audit.RecordQuery(ctx, events.NewQueryPerformed(
		chatID, displayName, string(session.SelectedField), normalized, events.OutcomeMatch, len(results)))

	if err := s.responder.SendMarkdown(chatID, renderResults(results)); err != nil {
		s.logger.Error("Dialog", "Failed to send results", map[string]interface{}{"chat_id": chatID, "error": err.Error()})
	}
	if err := s.responder.SendKeyboard(chatID, msgAfterResults, [][]Button{
		{{Label: "Nova pesquisa", Data: CallbackNewSearch}},
		{{Label: "Encerrar", Data: CallbackClose}},
	}); err != nil {
		s.logger.Error("Dialog", "Failed to send options", map[string]interface{}{"chat_id": chatID, "error": err.Error()})
	}
}

// HandleRestart behaves exactly like a fresh /start.
func (s *dialogService) HandleRestart(ctx context.Context, chatID int64, displayName string) {
	s.HandleStart(ctx, chatID, displayName)
}

// HandleClose says goodbye and leaves the session quiescent. The session
// object survives: the next message resolves through the machine again and
// will ask for a field.
func (s *dialogService) HandleClose(ctx context.Context, chatID int64) {
	unlock := s.sessions.Lock(chatID)
	defer unlock()

	session := s.sessions.Get(chatID)
	session.Reset()
	s.sessions.Save(session)

	s.send(chatID, msgFarewell)
}

func (s *dialogService) sendFieldChoice(chatID int64, displayName string) {
	if displayName == "" {
		displayName = "Usuário"
	}
	welcome := fmt.Sprintf(
		"Olá, %s! 👋\n\nBem-vindo ao Bot de Pesquisa de Clientes. 🤖\nEscolha abaixo o tipo de pesquisa que deseja realizar:",
		displayName,
	)
	rows := [][]Button{
		{{Label: "Pesquisar por Nome", Data: string(store.FieldNome)}},
		{{Label: "Pesquisar por Instalação", Data: string(store.FieldInstalacao)}},
		{{Label: "Pesquisar por Medidor", Data: string(store.FieldMedidor)}},
	}
	if err := s.responder.SendKeyboard(chatID, welcome, rows); err != nil {
		s.logger.Error("Dialog", "Failed to send field choice", map[string]interface{}{"chat_id": chatID, "error": err.Error()})
	}
}

func (s *dialogService) send(chatID int64, text string) {
	if err := s.responder.SendText(chatID, text); err != nil {
		s.logger.Error("Dialog", "Failed to send message", map[string]interface{}{"chat_id": chatID, "error": err.Error()})
	}
}

// renderResults batches the matching records into one Markdown message, one
// block per record, capped at maxRenderedResults.
func renderResults(results []entity.Customer) string {
	total := len(results)
	shown := results
	if total > maxRenderedResults {
		shown = results[:maxRenderedResults]
	}

	blocks := make([]string, 0, len(shown)+1)
	for _, c := range shown {
		blocks = append(blocks, fmt.Sprintf(
			"Nome: %s\nInstalação: %s\nMedidor: %s\nLocalização: [Abrir no Maps](%s)",
			c.Nome, c.Instalacao, c.Medidor, MapLink(c.Latitude, c.Longitude),
		))
	}
	if total > len(shown) {
		blocks = append(blocks, fmt.Sprintf(
			"Mostrando %d de %d resultados. Refine sua pesquisa.", len(shown), total))
	}
	return strings.Join(blocks, "\n\n")
}

// MapLink derives the Google Maps URL for a coordinate pair. The exact format
// is load-bearing for downstream consumers; do not change it.
func MapLink(lat, lon string) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s", lat, lon)
}
