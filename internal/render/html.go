package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"git.home.luguber.info/inful/errmatrix/internal/assemble"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/markdown"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

// HTMLRenderer renders standalone HTML pages with a navigation sidebar.
type HTMLRenderer struct {
	tpl *template.Template
}

// NewHTMLRenderer parses the embedded page layout.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tpl, err := template.New("page.html.tmpl").Option("missingkey=error").ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "parse page template").Fatal().Build()
	}
	return &HTMLRenderer{tpl: tpl}, nil
}

func (r *HTMLRenderer) Extension() string { return "html" }

type htmlSection struct {
	ID      string
	Heading string
	Code    template.HTML
	Output  string
}

type htmlPage struct {
	Title       string
	SiteTitle   string
	Version     string
	Nav         []assemble.NavLink
	Description template.HTML
	HasSetup    bool
	Setup       template.HTML
	Sections    []htmlSection
}

// Render fills the layout. Highlighted code is trusted markup from the
// highlighter; captured output is escaped.
func (r *HTMLRenderer) Render(page assemble.Page, meta Meta) ([]byte, error) {
	desc, err := markdown.ToHTML(page.Description)
	if err != nil {
		return nil, renderError(err, page.ID, "convert description")
	}

	data := htmlPage{
		Title:     page.Title,
		SiteTitle: meta.SiteTitle,
		Version:   meta.Version,
		Nav:       page.Nav,
		// #nosec G203 -- goldmark output with raw HTML disabled
		Description: template.HTML(strings.TrimSpace(desc)),
		Sections:    make([]htmlSection, 0, len(page.Sections)),
	}
	if page.Setup != nil && page.Setup.Source != "" {
		// #nosec G203 -- highlighter output escapes the source
		data.Setup = template.HTML(page.Setup.Highlighted)
		data.HasSetup = true
	}
	for _, s := range page.Sections {
		data.Sections = append(data.Sections, htmlSection{
			ID:      s.ID,
			Heading: s.Heading,
			// #nosec G203 -- highlighter output escapes the source
			Code:   template.HTML(s.Code.Highlighted),
			Output: s.Output,
		})
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, data); err != nil {
		return nil, renderError(err, page.ID, "execute page template")
	}
	return buf.Bytes(), nil
}

func renderError(err error, id, msg string) error {
	return ferrors.WrapError(err, ferrors.CategoryRender, msg).
		Fatal().
		WithContext("page", id).
		Build()
}
