package htmlutil

import (
	"strings"
	"testing"
)

func TestToText(t *testing.T) {
	html := `<html><head><title>x</title></head><body>
<h1>New york</h1>


<p>24°C &amp; Partly Cloudy</p>
<ul><li>Humidity 65%</li></ul>
</body></html>`

	got := ToText(html)
	for _, want := range []string{"New york", "24°C & Partly Cloudy", "Humidity 65%"} {
		if !strings.Contains(got, want) {
			t.Errorf("ToText missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<") {
		t.Errorf("ToText left tags:\n%s", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("ToText kept runs of blank lines:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("ToText should end with exactly one newline: %q", got)
	}
}
