package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lox/skyview/internal/models"
)

// ToIdentifier converts a free-text city name to a URL-safe identifier.
// The input is lowercased and every run of whitespace becomes one hyphen.
// Empty input yields an empty identifier.
func ToIdentifier(name string) models.CityIdentifier {
	var b strings.Builder
	b.Grow(len(name))

	inSpace := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return models.CityIdentifier(b.String())
}

// ToDisplayLabel turns an identifier back into a label for display.
// Only the first character is upper-cased, so "new-york" becomes "New york".
func ToDisplayLabel(id models.CityIdentifier) string {
	s := string(id)
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	rest := strings.ReplaceAll(s[size:], "-", " ")
	if first == '-' {
		return " " + rest
	}
	return string(unicode.ToUpper(first)) + rest
}
