// Package nav handles the navbar: which link matches the current page and
// the hamburger menu used on narrow layouts.
package nav

import "strings"

type Link struct {
	Label  string
	Href   string
	Active bool
}

// MarkActive flags links pointing at the page in path. A link matches when
// its href equals the last path segment; the site root also matches
// index.html.
func MarkActive(path string, links []Link) []Link {
	page := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		page = path[i+1:]
	}
	out := make([]Link, len(links))
	for i, l := range links {
		l.Active = l.Href == page || (path == "/" && l.Href == "index.html")
		out[i] = l
	}
	return out
}

// Bar is the transform applied to one of the three hamburger bars.
type Bar struct {
	Rotate   float64 // degrees
	TX, TY   float64
	Opacity  float64
	Identity bool
}

// Menu is the collapsible link list behind the hamburger button.
type Menu struct {
	open bool
}

func (m *Menu) Toggle() { m.open = !m.open }

func (m *Menu) Open() bool { return m.open }

// Bars returns the styles of the top, middle and bottom bars. An open menu
// turns them into a cross.
func (m *Menu) Bars() [3]Bar {
	if !m.open {
		return [3]Bar{
			{Opacity: 1, Identity: true},
			{Opacity: 1, Identity: true},
			{Opacity: 1, Identity: true},
		}
	}
	return [3]Bar{
		{Rotate: 45, TX: 5, TY: 5, Opacity: 1},
		{Opacity: 0, Identity: true},
		{Rotate: -45, TX: 5, TY: -5, Opacity: 1},
	}
}
