package api

import (
	"embed"
	"html/template"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lox/skyview/internal/forecast"
	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/units"
)

//go:embed templates/*
var templateFS embed.FS

// cityPath builds the detail page path for a city, plus optional suffix
// segments such as "chart".
func cityPath(id models.CityIdentifier, rest ...string) string {
	parts := append([]string{"/weather", url.PathEscape(string(id))}, rest...)
	return strings.Join(parts, "/")
}

// titleCase upper-cases the first letter of s.
func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// newTemplates creates and parses the HTML templates with custom functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"temp":     units.FormatTemp,
		"deg":      units.FormatDegrees,
		"wind":     units.FormatWind,
		"pressure": units.FormatPressure,
		"hour":     units.FormatHour,
		"icon":     forecast.Icon,
		"cityPath": cityPath,
		"upper":    strings.ToUpper,
		"title":    titleCase,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
