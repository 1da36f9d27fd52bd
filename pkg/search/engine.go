// Package search resolves free-text queries against the customer snapshot.
//
// Matching is deliberately simple: the query is normalized and split on
// whitespace, and a record matches when every token is a substring of the
// normalized value of the selected field. Token order is irrelevant. The scan
// is linear, which is fine for the expected dataset size (hundreds to low
// thousands of rows).
package search

import (
	"strings"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/normalize"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"
)

// Engine runs queries against one immutable record snapshot.
type Engine struct {
	records *store.RecordStore
}

// NewEngine creates an engine over the given snapshot.
func NewEngine(records *store.RecordStore) *Engine {
	return &Engine{records: records}
}

// Search returns the records whose selected field contains every token of the
// query, preserving the snapshot's load order. A query that normalizes to
// zero tokens, or matches nothing, yields an empty result — never an error.
func (e *Engine) Search(field store.Field, rawQuery string) []entity.Customer {
	tokens := normalize.Tokens(rawQuery)
	if len(tokens) == 0 {
		return nil
	}

	var results []entity.Customer
	for _, c := range e.records.All() {
		if matchesAll(normalize.Normalize(store.FieldValue(c, field)), tokens) {
			results = append(results, c)
		}
	}
	return results
}

// matchesAll reports whether every token is a substring of value. value and
// tokens are already normalized.
func matchesAll(value string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(value, tok) {
			return false
		}
	}
	return true
}
