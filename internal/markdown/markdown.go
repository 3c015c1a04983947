// Package markdown converts page descriptions to HTML and builds the
// Markdown bodies of generated pages.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// ToHTML renders a Markdown fragment. Raw HTML in the input is not passed through.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
