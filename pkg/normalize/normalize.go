// Package normalize converts arbitrary text into the canonical form used for
// every comparison in the search pipeline: decomposed, stripped of combining
// marks, lower-cased. Stored values, spreadsheet headers and incoming queries
// all go through the same function so "Instalação" and "instalacao" compare
// equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics and lower-cases s. Pure and idempotent.
func Normalize(s string) string {
	result, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		// The chain never fails on valid UTF-8; invalid bytes pass through.
		return strings.ToLower(s)
	}
	return result
}

// Tokens splits the normalized form of s on whitespace. Empty tokens are
// discarded, so a query of only spaces yields a nil slice.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}
