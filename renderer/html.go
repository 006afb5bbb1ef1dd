package renderer

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// HTML converts markdown to HTML. Raw HTML in the source is not rendered.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
