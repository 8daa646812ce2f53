package support

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/nfrund/adhdhub/internal/middleware"
	"github.com/nfrund/adhdhub/internal/pubsub"
	"github.com/nfrund/adhdhub/internal/rendering"
)

// Handler holds dependencies for the support page's HTTP handlers.
type Handler struct {
	store     board.Store
	source    *content.Source
	publisher pubsub.Publisher
	renderer  rendering.Renderer
	activity  *ActivityLog
	appName   string
}

// NewHandler creates a new support handler with its dependencies.
func NewHandler(store board.Store, source *content.Source, publisher pubsub.Publisher, renderer rendering.Renderer, activity *ActivityLog, appName string) *Handler {
	return &Handler{
		store:     store,
		source:    source,
		publisher: publisher,
		renderer:  renderer,
		activity:  activity,
		appName:   appName,
	}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// PageGet serves the full page. Every full load starts a fresh board.
func (h *Handler) PageGet(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown section").SetInternal(err)
	}

	_, b, err := h.startBoard(c)
	if err != nil {
		return err
	}
	if req.Tab != "" {
		b.SelectTab(content.Tab(req.Tab))
	}

	return h.renderer.RenderPage(c, http.StatusOK, Page(h.appName, b.Snapshot(), h.source.Catalog()))
}

// TabGet selects a tab. htmx requests receive the tab panel, others the full page.
func (h *Handler) TabGet(c echo.Context) error {
	var req TabRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown section").SetInternal(err)
	}
	tab := content.Tab(req.Tab)

	_, b, err := h.currentBoard(c)
	if err != nil {
		return err
	}
	b.SelectTab(tab)

	if isHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, TabPanel(tab, h.source.Catalog()))
	}
	return h.renderer.RenderPage(c, http.StatusOK, Page(h.appName, b.Snapshot(), h.source.Catalog()))
}

// DraftPut stores the text being composed.
func (h *Handler) DraftPut(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	_, b, err := h.currentBoard(c)
	if err != nil {
		return err
	}
	b.SetDraft(req.Body)
	return c.NoContent(http.StatusNoContent)
}

// MessagePost appends a message. Whitespace-only input is ignored: htmx gets a
// 204 so nothing on the page changes.
func (h *Handler) MessagePost(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	id, b, err := h.currentBoard(c)
	if err != nil {
		return err
	}

	msg, ok := b.Submit(req.Body)
	if ok {
		h.publishPosted(c, id, msg)
	}

	if !isHTMX(c) {
		// Plain form posts land back on the page without resetting the board.
		return c.Redirect(http.StatusSeeOther, tabPath(b.ActiveTab()))
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	snap := b.Snapshot()
	return h.renderer.RenderPage(c, http.StatusOK, BoardView(snap.Messages, snap.Draft))
}

// publishPosted announces msg. Ids are assigned as count+1, so the id is also
// the board size right after the append.
func (h *Handler) publishPosted(c echo.Context, boardID string, msg board.Message) {
	ctx := c.Request().Context()
	err := pubsub.Publish(ctx, h.publisher, TopicMessagePosted, boardID, MessagePosted{
		BoardID:    boardID,
		MessageID:  msg.ID,
		BodyLength: utf8.RuneCountInString(msg.Body),
		Total:      msg.ID,
	})
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to publish message event", "board_id", boardID, "error", err)
	}
}

// MessagesGet returns the session board's messages as JSON.
func (h *Handler) MessagesGet(c echo.Context) error {
	_, b, err := h.currentBoard(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b.Messages())
}

// StatsGet reports activity counters.
func (h *Handler) StatsGet(c echo.Context) error {
	if h.activity == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Activity log is not running").
			SetInternal(errors.New("nil activity log"))
	}
	stats := h.activity.Stats()
	stats.ActiveBoards = h.store.Len()
	return c.JSON(http.StatusOK, stats)
}
