package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/nfrund/adhdhub/internal/rendering"
	"github.com/nfrund/adhdhub/internal/view"
	"github.com/samber/lo"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeHandler handles requests for the landing and about pages.
type HomeHandler struct {
	renderer rendering.Renderer
	appName  string
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(renderer rendering.Renderer, appName string) *HomeHandler {
	return &HomeHandler{renderer: renderer, appName: appName}
}

// HomeGet renders the landing page.
func (hh *HomeHandler) HomeGet(c echo.Context) error {
	return hh.renderer.RenderPage(c, http.StatusOK, view.Base("Home", hh.appName, homeContent()))
}

// AboutGet renders the about page.
func (hh *HomeHandler) AboutGet(c echo.Context) error {
	return hh.renderer.RenderPage(c, http.StatusOK, view.Base("About", hh.appName, aboutContent(hh.appName)))
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func homeContent() g.Node {
	return h.Div(
		h.Class("home"),
		h.H1(g.Text("Living well with ADHD")),
		h.P(g.Text("Learn about symptoms and strengths, pick up strategies, and share your own tips.")),
		h.Ul(
			h.Class("topics"),
			g.Group(lo.Map(content.Tabs(), func(tab content.Tab, _ int) g.Node {
				return h.Li(h.A(h.Href("/adhd?tab="+tab.String()), g.Text(tab.Label())))
			})),
		),
		h.A(h.Class("button"), h.Href("/adhd"), g.Text("Open the ADHD support page")),
	)
}

func aboutContent(appName string) g.Node {
	return h.Div(
		h.Class("about"),
		h.H1(g.Text("About "+appName)),
		h.P(g.Text("This site collects plain-language information about ADHD alongside a scratch board where you can jot down tips.")),
		h.Div(
			h.Class("card"),
			h.H3(g.Text("Your messages stay with you")),
			h.P(g.Text("Messages you post live only in your current visit. Reloading the page starts a fresh board, and nothing is shared with other visitors.")),
		),
		h.Div(
			h.Class("card"),
			h.H3(g.Text("Not medical advice")),
			h.P(g.Text("The content here is educational. Talk to a qualified professional about diagnosis and treatment.")),
		),
	)
}
