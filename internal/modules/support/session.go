package support

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/middleware"
)

const (
	// SessionName is the cookie session holding the visitor's board id.
	SessionName = "adhdhub-session"
	boardIDKey  = "board_id"
)

// startBoard creates a fresh board and binds it to the visitor's session.
func (h *Handler) startBoard(c echo.Context) (string, *board.Board, error) {
	sess, err := session.Get(SessionName, c)
	if sess == nil {
		return "", nil, fmt.Errorf("failed to load session: %w", err)
	}
	if err != nil {
		// An undecodable cookie (e.g. after a secret rotation) yields a new session.
		middleware.FromContext(c.Request().Context()).Debug("Discarding unreadable session", "error", err)
	}

	id, b := h.store.Create()
	sess.Values[boardIDKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		h.store.Delete(id)
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}

	middleware.FromContext(c.Request().Context()).Debug("Started board", "board_id", id)
	return id, b, nil
}

// currentBoard returns the board bound to the session, starting a fresh one
// when the session has none or its board was evicted.
func (h *Handler) currentBoard(c echo.Context) (string, *board.Board, error) {
	sess, _ := session.Get(SessionName, c)
	if sess != nil {
		if id, ok := sess.Values[boardIDKey].(string); ok {
			if b, ok := h.store.Get(id); ok {
				return id, b, nil
			}
		}
	}
	return h.startBoard(c)
}
