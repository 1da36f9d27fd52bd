package search

import (
	"testing"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"
)

func fixtureEngine() *Engine {
	records := []entity.Customer{
		{Nome: "João Silva", Instalacao: "100200", Medidor: "M-001", Latitude: "-23.55", Longitude: "-46.63"},
		{Nome: "Maria Silva", Instalacao: "100300", Medidor: "M-002", Latitude: "-22.90", Longitude: "-43.20"},
		{Nome: "Ana da Rua Nova", Instalacao: "200400", Medidor: "M-003", Latitude: "-19.92", Longitude: "-43.94"},
	}
	return NewEngine(store.New(records, "fixture"))
}

func TestSearchByName(t *testing.T) {
	e := fixtureEngine()

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{name: "shared surname returns both in load order", query: "silva", wantNames: []string{"João Silva", "Maria Silva"}},
		{name: "accented query matches accented record", query: "joão", wantNames: []string{"João Silva"}},
		{name: "unaccented query matches accented record", query: "joao", wantNames: []string{"João Silva"}},
		{name: "uppercase query", query: "MARIA", wantNames: []string{"Maria Silva"}},
		{name: "no match", query: "xyz", wantNames: nil},
		{name: "token AND across words", query: "ana rua", wantNames: []string{"Ana da Rua Nova"}},
		{name: "token order irrelevant", query: "rua ana", wantNames: []string{"Ana da Rua Nova"}},
		{name: "one token missing fails whole match", query: "maria rua", wantNames: nil},
		{name: "substring not word boundary", query: "ilv", wantNames: []string{"João Silva", "Maria Silva"}},
		{name: "empty query", query: "", wantNames: nil},
		{name: "whitespace only query", query: "   ", wantNames: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Search(store.FieldNome, tt.query)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Search(nome, %q) returned %d records, want %d", tt.query, len(got), len(tt.wantNames))
			}
			for i, c := range got {
				if c.Nome != tt.wantNames[i] {
					t.Errorf("result[%d].Nome = %q, want %q", i, c.Nome, tt.wantNames[i])
				}
			}
		})
	}
}

func TestSearchOtherFields(t *testing.T) {
	e := fixtureEngine()

	if got := e.Search(store.FieldInstalacao, "1003"); len(got) != 1 || got[0].Nome != "Maria Silva" {
		t.Errorf("installation search returned %v", got)
	}
	if got := e.Search(store.FieldMedidor, "m-00"); len(got) != 3 {
		t.Errorf("meter prefix search returned %d records, want 3", len(got))
	}
}

func TestSearchNeverErrors(t *testing.T) {
	e := NewEngine(store.New(nil, "empty"))

	for _, q := range []string{"", "   ", "anything", "ção"} {
		if got := e.Search(store.FieldNome, q); len(got) != 0 {
			t.Errorf("empty store returned results for %q", q)
		}
	}
}
