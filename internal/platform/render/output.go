package render

import (
	"strings"

	"github.com/vovakirdan/zip-arcade/internal/core"
)

// Plain converts a canvas to text without styling.
// Trailing spaces are trimmed from every line.
func Plain(c *core.Canvas) string {
	lines := make([]string, c.Height())
	for y := range lines {
		lines[y] = strings.TrimRight(c.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}

// Styled converts a canvas to text styled with the theme.
// Trailing blank runs are dropped so the text lines up with Plain.
func Styled(c *core.Canvas, t Theme) string {
	lines := make([]string, c.Height())
	for y := range lines {
		spans := c.Spans(y)
		for len(spans) > 0 && strings.TrimRight(spans[len(spans)-1].Text, " ") == "" {
			spans = spans[:len(spans)-1]
		}

		var sb strings.Builder
		for i, s := range spans {
			text := s.Text
			if i == len(spans)-1 {
				text = strings.TrimRight(text, " ")
			}
			sb.WriteString(t.Style(s.Color).Render(text))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
