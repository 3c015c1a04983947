package assemble

import "git.home.luguber.info/inful/errmatrix/internal/axis"

// Nav lists one link per kind in the given order, then the panic page. No
// entry is active.
func Nav(kinds []axis.ErrorKind) []NavLink {
	nav := make([]NavLink, 0, len(kinds)+1)
	for _, k := range kinds {
		nav = append(nav, NavLink{ID: k.ShortID(), Title: k.Title()})
	}
	return append(nav, NavLink{ID: axis.PanicID, Title: PanicTitle})
}

// markActive copies nav with the entry for id marked.
func markActive(nav []NavLink, id string) []NavLink {
	out := make([]NavLink, len(nav))
	for i, l := range nav {
		l.Active = l.ID == id
		out[i] = l
	}
	return out
}
