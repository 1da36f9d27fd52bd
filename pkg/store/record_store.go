package store

import (
	"time"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
)

// RecordStore is the immutable in-memory snapshot of the customer dataset.
// It is built once at startup and shared without locking: nothing mutates it
// after New returns.
type RecordStore struct {
	records  []entity.Customer
	source   string
	loadedAt time.Time
}

// New copies records into a fresh snapshot. source is a human-readable tag of
// where the rows came from (file path or DSN host), used by the ops API.
func New(records []entity.Customer, source string) *RecordStore {
	owned := make([]entity.Customer, len(records))
	copy(owned, records)
	return &RecordStore{
		records:  owned,
		source:   source,
		loadedAt: time.Now(),
	}
}

// All returns the records in load order. Callers must not modify the slice.
func (s *RecordStore) All() []entity.Customer {
	return s.records
}

// Len returns the number of records in the snapshot.
func (s *RecordStore) Len() int {
	return len(s.records)
}

// Source reports where the snapshot was loaded from.
func (s *RecordStore) Source() string {
	return s.source
}

// LoadedAt reports when the snapshot was built.
func (s *RecordStore) LoadedAt() time.Time {
	return s.loadedAt
}

// FieldValue extracts the value of the selected search field from a record.
func FieldValue(c entity.Customer, f Field) string {
	switch f {
	case FieldNome:
		return c.Nome
	case FieldInstalacao:
		return c.Instalacao
	case FieldMedidor:
		return c.Medidor
	}
	return ""
}
