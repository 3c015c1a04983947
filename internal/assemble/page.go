// Package assemble arranges synthesized sources and captured output into
// documentation pages.
package assemble

// Code is a source fragment in both raw and highlighted form.
type Code struct {
	Source      string
	Highlighted string
}

// Section documents one Operation on an ErrorKind page.
type Section struct {
	ID      string
	Heading string
	Code    Code
	Output  string
}

// NavLink is one sidebar entry.
type NavLink struct {
	ID     string
	Title  string
	Active bool
}

// Page is everything a renderer needs for one output artifact.
type Page struct {
	ID          string
	Title       string
	Description string
	// Setup is the code shared by all sections, shown once. The panic page has none.
	Setup    *Code
	Sections []Section
	Nav      []NavLink
	// Weight orders pages in generated site menus.
	Weight int
}

// ActiveNav returns the active link, or false when none is marked.
func (p Page) ActiveNav() (NavLink, bool) {
	for _, l := range p.Nav {
		if l.Active {
			return l, true
		}
	}
	return NavLink{}, false
}
