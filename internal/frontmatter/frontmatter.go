// Package frontmatter reads and writes the YAML header of generated Markdown
// pages.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

const delimiter = "---\n"

// ErrMissingClosingDelimiter indicates the document opened a YAML header
// without closing it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates the YAML header from the Markdown body. If content has no
// header, had is false and body is the full input.
func Split(content []byte) (header, body []byte, had bool, err error) {
	if !bytes.HasPrefix(content, []byte(delimiter)) {
		return nil, content, false, nil
	}
	rest := content[len(delimiter):]
	if bytes.HasPrefix(rest, []byte(delimiter)) {
		return []byte{}, rest[len(delimiter):], true, nil
	}
	idx := bytes.Index(rest, []byte("\n"+delimiter))
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+1], rest[idx+1+len(delimiter):], true, nil
}

// Join emits header and body as one document. An empty header yields an
// empty delimited block.
func Join(header, body []byte) []byte {
	out := make([]byte, 0, 2*len(delimiter)+len(header)+len(body))
	out = append(out, delimiter...)
	out = append(out, header...)
	out = append(out, delimiter...)
	return append(out, body...)
}

// ParseYAML parses a header (without delimiters) into a map.
func ParseYAML(header []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(header) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(header, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Document serializes fields and prepends them to body.
func Document(fields map[string]any, body []byte) ([]byte, error) {
	header, err := SerializeYAML(fields)
	if err != nil {
		return nil, err
	}
	return Join(header, body), nil
}
