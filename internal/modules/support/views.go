package support

import (
	"fmt"

	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/nfrund/adhdhub/internal/view"
	"github.com/samber/lo"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	basePath     = "/adhd"
	tabPanelID   = "tab-panel"
	boardID      = "board"
	pageTitle    = "ADHD Support"
	draftTrigger = "keyup changed delay:500ms"
)

func tabPath(tab content.Tab) string {
	return basePath + "/tabs/" + tab.String()
}

// Page renders the full support page for a board snapshot.
func Page(appName string, snap board.Snapshot, catalog *content.Catalog) g.Node {
	return view.Base(pageTitle, appName,
		h.Section(
			h.Class("hero"),
			h.H1(g.Text("Understanding ADHD")),
			h.P(g.Text("Facts, strengths and practical strategies, plus a space to share what works for you.")),
		),
		TabPanel(snap.ActiveTab, catalog),
		BoardView(snap.Messages, snap.Draft),
	)
}

// TabPanel renders the tab triggers and the content of the active tab only.
func TabPanel(active content.Tab, catalog *content.Catalog) g.Node {
	section, _ := catalog.Section(active)

	return h.Div(
		h.ID(tabPanelID),
		h.Nav(
			h.Class("tabs"),
			h.Role("tablist"),
			g.Group(lo.Map(content.Tabs(), func(tab content.Tab, _ int) g.Node {
				return tabTrigger(tab, tab == active)
			})),
		),
		h.Section(
			h.Class("tab-content"),
			h.Role("tabpanel"),
			g.Attr("data-tab", active.String()),
			h.H2(g.Text(section.Title)),
			g.If(section.Intro != "", h.P(h.Class("intro"), g.Text(section.Intro))),
			g.Group(lo.Map(section.Groups, func(grp content.Group, _ int) g.Node {
				return groupCard(grp)
			})),
		),
	)
}

func tabTrigger(tab content.Tab, selected bool) g.Node {
	return h.A(
		h.Href(tabPath(tab)),
		h.Role("tab"),
		h.Aria("selected", fmt.Sprint(selected)),
		h.Class(lo.Ternary(selected, "tab active", "tab")),
		hx.Get(tabPath(tab)),
		hx.Target("#"+tabPanelID),
		hx.Swap("outerHTML"),
		g.Text(tab.Label()),
	)
}

func groupCard(grp content.Group) g.Node {
	return h.Div(
		h.Class("card"),
		h.H3(g.Text(grp.Heading)),
		h.Ul(
			g.Group(lo.Map(grp.Items, func(item content.Item, _ int) g.Node {
				return h.Li(
					h.Strong(g.Text(item.Title)),
					g.Text(": "+item.Detail),
				)
			})),
		),
	)
}

// BoardView renders the message list followed by the compose form.
func BoardView(messages []board.Message, draft string) g.Node {
	return h.Section(
		h.ID(boardID),
		h.Class("board"),
		h.H2(g.Text("Community Board")),
		h.Ul(
			h.Class("messages"),
			g.Group(lo.Map(messages, func(m board.Message, _ int) g.Node {
				return messageItem(m)
			})),
		),
		composeForm(draft),
	)
}

func messageItem(m board.Message) g.Node {
	return h.Li(
		h.Class("message"),
		h.ID(fmt.Sprintf("message-%d", m.ID)),
		h.Div(
			h.Class("message-meta"),
			h.Span(h.Class("author"), g.Text(m.Author)),
			h.Span(h.Class("time"), g.Text(m.TimeLabel)),
		),
		h.P(h.Class("body"), g.Text(m.Body)),
		// Display only: there is no like action.
		h.Span(
			h.Class("likes"),
			h.Aria("label", fmt.Sprintf("%d likes", m.Likes)),
			g.Textf("♥ %d", m.Likes),
		),
	)
}

func composeForm(draft string) g.Node {
	return h.Form(
		h.Class("compose"),
		h.Method("post"),
		h.Action(basePath+"/messages"),
		hx.Post(basePath+"/messages"),
		hx.Target("#"+boardID),
		hx.Swap("outerHTML"),
		h.Input(
			h.Type("text"),
			h.Name("body"),
			h.Value(draft),
			h.Placeholder("Share a tip or ask the community..."),
			h.AutoComplete("off"),
			hx.Put(basePath+"/draft"),
			hx.Trigger(draftTrigger),
			hx.Swap("none"),
		),
		h.Button(h.Type("submit"), g.Text("Post")),
	)
}
