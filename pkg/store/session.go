package store

// Field identifies which customer column a search runs against.
type Field string

const (
	FieldNone       Field = ""
	FieldNome       Field = "nome"
	FieldInstalacao Field = "instalacao"
	FieldMedidor    Field = "medidor"
)

// ParseField maps a callback tag to a search field. ok is false for anything
// outside the three known tags.
func ParseField(tag string) (Field, bool) {
	switch Field(tag) {
	case FieldNome, FieldInstalacao, FieldMedidor:
		return Field(tag), true
	}
	return FieldNone, false
}

// Phase is the dialogue position of one chat.
type Phase string

const (
	// PhaseIdle: no search field chosen yet. Initial state of every session.
	PhaseIdle Phase = "IDLE"
	// PhaseAwaitingQuery: a field is chosen, the next free-text message is a query.
	PhaseAwaitingQuery Phase = "AWAITING_QUERY"
	// PhaseResultsShown: results delivered, waiting for restart/close choice.
	PhaseResultsShown Phase = "RESULTS_SHOWN"
)

// Session represents the active conversation state of a single chat in
// memory. It must only be touched under the session repository's per-chat
// lock.
type Session struct {
	ChatID        int64  `json:"chat_id"`
	SelectedField Field  `json:"selected_field"`
	Phase         Phase  `json:"phase"`
	LastQuery     string `json:"last_query"`
}

// NewSession returns the default state for a chat that has never interacted.
func NewSession(chatID int64) *Session {
	return &Session{
		ChatID: chatID,
		Phase:  PhaseIdle,
	}
}

// Reset returns the session to the quiescent condition: no field selected,
// idle phase. The session object itself survives.
func (s *Session) Reset() {
	s.SelectedField = FieldNone
	s.Phase = PhaseIdle
}
