package events

import (
	"time"

	"github.com/google/uuid"
)

const TypeQueryPerformed = "QUERY_PERFORMED"

// Query outcomes recorded in the audit trail.
const (
	OutcomeMatch   = "match"
	OutcomeNoMatch = "no_match"
)

// QueryPerformed is emitted every time a user's free-text query is resolved
// against the record store.
type QueryPerformed struct {
	ID              uuid.UUID `json:"id"`
	ChatID          int64     `json:"chat_id"`
	DisplayName     string    `json:"display_name"`
	Field           string    `json:"field"`
	NormalizedQuery string    `json:"normalized_query"`
	Outcome         string    `json:"outcome"`
	ResultCount     int       `json:"result_count"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewQueryPerformed stamps a fresh event with an ID and timestamp.
func NewQueryPerformed(chatID int64, displayName, field, normalizedQuery, outcome string, resultCount int) QueryPerformed {
	return QueryPerformed{
		ID:              uuid.New(),
		ChatID:          chatID,
		DisplayName:     displayName,
		Field:           field,
		NormalizedQuery: normalizedQuery,
		Outcome:         outcome,
		ResultCount:     resultCount,
		OccurredAt:      time.Now(),
	}
}

func (e QueryPerformed) EventType() string {
	return TypeQueryPerformed
}

func (e QueryPerformed) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":               e.ID.String(),
		"chat_id":          e.ChatID,
		"display_name":     e.DisplayName,
		"field":            e.Field,
		"normalized_query": e.NormalizedQuery,
		"outcome":          e.Outcome,
		"result_count":     e.ResultCount,
	}
}

func (e QueryPerformed) Timestamp() time.Time {
	return e.OccurredAt
}
