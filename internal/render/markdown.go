package render

import (
	"fmt"

	"git.home.luguber.info/inful/errmatrix/internal/assemble"
	"git.home.luguber.info/inful/errmatrix/internal/frontmatter"
	"git.home.luguber.info/inful/errmatrix/internal/markdown"
)

// MarkdownRenderer renders static-site Markdown with a YAML header carrying
// title, weight, toolchain version and a content fingerprint.
type MarkdownRenderer struct{}

// NewMarkdownRenderer returns a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer { return &MarkdownRenderer{} }

func (r *MarkdownRenderer) Extension() string { return "md" }

func (r *MarkdownRenderer) Render(page assemble.Page, meta Meta) ([]byte, error) {
	body := []byte(r.body(page))

	fields := map[string]any{
		"title":  page.Title,
		"weight": page.Weight,
	}
	if meta.Version != "" {
		fields["toolchain"] = meta.Version
	}
	if meta.SiteTitle != "" {
		fields["site"] = meta.SiteTitle
	}
	if err := frontmatter.Stamp(fields, body); err != nil {
		return nil, renderError(err, page.ID, "fingerprint page")
	}
	doc, err := frontmatter.Document(fields, body)
	if err != nil {
		return nil, renderError(err, page.ID, "serialize front matter")
	}
	return doc, nil
}

func (r *MarkdownRenderer) body(page assemble.Page) string {
	var b markdown.Builder
	b.List(navItems(page.Nav))
	b.Heading(1, page.Title)
	b.Paragraph(page.Description)
	if page.Setup != nil && page.Setup.Source != "" {
		b.Heading(2, "Setup")
		b.Fence("rust", page.Setup.Source)
	}
	for _, s := range page.Sections {
		b.Heading(2, s.Heading)
		b.Fence("rust", s.Code.Source)
		b.Fence("text", s.Output)
	}
	return b.String()
}

func navItems(nav []assemble.NavLink) []string {
	items := make([]string, 0, len(nav))
	for _, l := range nav {
		if l.Active {
			items = append(items, fmt.Sprintf("**%s**", l.Title))
			continue
		}
		items = append(items, fmt.Sprintf("[%s](%s.md)", l.Title, l.ID))
	}
	return items
}
