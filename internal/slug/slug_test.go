package slug

import (
	"testing"
	"unicode"

	"github.com/lox/skyview/internal/models"
)

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want models.CityIdentifier
	}{
		{"New York", "new-york"},
		{"London", "london"},
		{"San   Francisco", "san-francisco"},
		{"Rio\tde\nJaneiro", "rio-de-janeiro"},
		{"", ""},
		{" Paris ", "-paris-"},
		{"São Paulo", "são-paulo"},
		{"ÅLESUND", "ålesund"},
		{"current-location", "current-location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToIdentifier(tt.name); got != tt.want {
				t.Errorf("ToIdentifier(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestToIdentifier_NoWhitespaceOrUpper(t *testing.T) {
	inputs := []string{"New York", "  Mixed CASE\tInput  ", "Ünïcödé  Städt", "東京 都", "a b"}
	for _, in := range inputs {
		id := ToIdentifier(in)
		for _, r := range string(id) {
			if unicode.IsSpace(r) {
				t.Errorf("ToIdentifier(%q) = %q contains whitespace", in, id)
			}
			if unicode.IsUpper(r) {
				t.Errorf("ToIdentifier(%q) = %q contains upper case %q", in, id, r)
			}
		}
	}
}

func TestToDisplayLabel(t *testing.T) {
	tests := []struct {
		id   models.CityIdentifier
		want string
	}{
		{"new-york", "New york"},
		{"london", "London"},
		{"current-location", "Current location"},
		{"", ""},
		{"ålesund", "Ålesund"},
		{"x", "X"},
		{"-paris-", " paris "},
	}

	for _, tt := range tests {
		if got := ToDisplayLabel(tt.id); got != tt.want {
			t.Errorf("ToDisplayLabel(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestRoundTripIsLossy(t *testing.T) {
	if got := ToDisplayLabel(ToIdentifier("New York")); got != "New york" {
		t.Errorf("round trip = %q, want %q", got, "New york")
	}
}
