// Package highlight renders Rust source as syntax-highlighted HTML.
package highlight

import (
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = "github"

// Chroma highlights with inline styles so pages need no extra stylesheet.
type Chroma struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChroma returns a Rust highlighter using the named chroma style.
func NewChroma(styleName string) (*Chroma, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	style, ok := styles.Registry[styleName]
	if !ok {
		return nil, ferrors.ConfigError("unknown highlight style").
			WithContext("style", styleName).
			Build()
	}
	lexer := lexers.Get("rust")
	if lexer == nil {
		return nil, ferrors.InternalError("rust lexer not registered").Build()
	}
	return &Chroma{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: chromahtml.New(chromahtml.TabWidth(4), chromahtml.WithClasses(false)),
	}, nil
}

// Highlight returns a standalone <pre> block.
func (c *Chroma) Highlight(code string) (string, error) {
	it, err := c.lexer.Tokenise(nil, code)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "tokenise source").Fatal().Build()
	}
	var b strings.Builder
	if err := c.formatter.Format(&b, c.style, it); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "format highlighted source").Fatal().Build()
	}
	return b.String(), nil
}

// Plain escapes code without coloring.
type Plain struct{}

func (Plain) Highlight(code string) (string, error) {
	return `<pre><code class="language-rust">` + html.EscapeString(code) + "</code></pre>", nil
}

// Styles lists the available style names.
func Styles() []string {
	return styles.Names()
}
