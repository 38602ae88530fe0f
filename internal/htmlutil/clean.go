package htmlutil

import (
	"strings"

	"github.com/k3a/html2text"
)

// ToText converts a rendered HTML page to plain text for terminal clients.
// Runs of blank lines collapse to one and trailing spaces are trimmed.
func ToText(s string) string {
	text := html2text.HTML2TextWithOptions(s, html2text.WithUnixLineBreaks())

	var b strings.Builder
	blank := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			if !blank && b.Len() > 0 {
				b.WriteByte('\n')
			}
			blank = true
			continue
		}
		blank = false
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
