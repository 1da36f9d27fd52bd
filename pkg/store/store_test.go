package store

import (
	"testing"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		tag    string
		want   Field
		wantOk bool
	}{
		{tag: "nome", want: FieldNome, wantOk: true},
		{tag: "instalacao", want: FieldInstalacao, wantOk: true},
		{tag: "medidor", want: FieldMedidor, wantOk: true},
		{tag: "", want: FieldNone, wantOk: false},
		{tag: "cpf", want: FieldNone, wantOk: false},
		{tag: "NOME", want: FieldNone, wantOk: false},
	}

	for _, tt := range tests {
		got, ok := ParseField(tt.tag)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseField(%q) = (%q, %v), want (%q, %v)", tt.tag, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(10)
	s.SelectedField = FieldMedidor
	s.Phase = PhaseResultsShown
	s.LastQuery = "m-001"

	s.Reset()

	if s.SelectedField != FieldNone || s.Phase != PhaseIdle {
		t.Errorf("Reset left state behind: %+v", s)
	}
	if s.ChatID != 10 {
		t.Errorf("Reset must not change the chat identity")
	}
}

func TestRecordStoreIsACopy(t *testing.T) {
	original := []entity.Customer{{Nome: "João"}}
	rs := New(original, "test")

	original[0].Nome = "mutated"

	if rs.All()[0].Nome != "João" {
		t.Error("store shares backing array with the caller")
	}
	if rs.Len() != 1 || rs.Source() != "test" {
		t.Errorf("unexpected store metadata: len=%d source=%q", rs.Len(), rs.Source())
	}
}

func TestFieldValue(t *testing.T) {
	c := entity.Customer{Nome: "Ana", Instalacao: "123", Medidor: "M-9"}

	if FieldValue(c, FieldNome) != "Ana" || FieldValue(c, FieldInstalacao) != "123" || FieldValue(c, FieldMedidor) != "M-9" {
		t.Error("field selector returned wrong column")
	}
	if FieldValue(c, FieldNone) != "" {
		t.Error("unset field must select nothing")
	}
}
