package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// NavLink is an entry in the site header.
type NavLink struct {
	Label string
	Href  string
}

// SiteNav is the header navigation shown on every page.
var SiteNav = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "About", Href: "/about"},
}

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title, appName string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}

// Base wraps page content in the shared HTML document.
func Base(title, appName string, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title, appName))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(
				h.Header(
					h.Class("site-header"),
					h.A(h.Class("brand"), h.Href("/"), g.Text(appName)),
					h.Nav(
						h.Class("site-nav"),
						g.Map(SiteNav, func(l NavLink) g.Node {
							return h.A(h.Href(l.Href), g.Text(l.Label))
						}),
					),
				),
				h.Main(h.Class("container"), g.Group(content)),
			),
		),
	)
}
