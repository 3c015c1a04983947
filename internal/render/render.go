// Package render turns assembled pages into output documents.
package render

import (
	"git.home.luguber.info/inful/errmatrix/internal/assemble"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// Format selects the output document type. Values match config.Output.Format.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Meta is the run-wide data shown on every page.
type Meta struct {
	SiteTitle string
	// Version is the toolchain version string the examples were built with.
	Version string
}

// Renderer produces one document per page.
type Renderer interface {
	Render(page assemble.Page, meta Meta) ([]byte, error)
	// Extension is the file suffix of rendered documents, without a dot.
	Extension() string
}

// New returns the renderer for f.
func New(f Format) (Renderer, error) {
	switch f {
	case FormatHTML:
		return NewHTMLRenderer()
	case FormatMarkdown:
		return NewMarkdownRenderer(), nil
	default:
		return nil, ferrors.ConfigError("unsupported output format").WithContext("format", string(f)).Build()
	}
}
