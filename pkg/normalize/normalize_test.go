package normalize

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain ascii", input: "Maria Silva", want: "maria silva"},
		{name: "accents stripped", input: "São Paulo", want: "sao paulo"},
		{name: "cedilla and tilde", input: "Instalação", want: "instalacao"},
		{name: "mixed case accents", input: "JOÃO DA CONCEIÇÃO", want: "joao da conceicao"},
		{name: "digits untouched", input: "Medidor 0042", want: "medidor 0042"},
		{name: "whitespace preserved", input: "  Ana  Rua ", want: "  ana  rua "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "São Paulo", "JOÃO", "маленький", "Ünïcôdé Mïx 123"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeAccentCaseInsensitive(t *testing.T) {
	if Normalize("São Paulo") != Normalize("sao paulo") {
		t.Error("accented and unaccented forms should normalize equal")
	}
	if Normalize("JOÃO") != Normalize("joão") {
		t.Error("case should not affect the normalized form")
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "only spaces", input: "   \t ", want: nil},
		{name: "single", input: "Silva", want: []string{"silva"}},
		{name: "multi with accents", input: "  João   SILVA ", want: []string{"joao", "silva"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokens(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
