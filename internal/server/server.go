package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/adhdhub/internal/app"
	"github.com/nfrund/adhdhub/internal/config"
	"github.com/nfrund/adhdhub/internal/handlers"
	"github.com/nfrund/adhdhub/internal/logging"
	appmiddleware "github.com/nfrund/adhdhub/internal/middleware"
	"github.com/nfrund/adhdhub/internal/module"
	"github.com/nfrund/adhdhub/internal/registry"
	"github.com/nfrund/adhdhub/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         config.Provider
	Deps        app.Dependencies
	Registry    *registry.Registry
	modules     []module.Module
	homeHandler *handlers.HomeHandler
	cancel      context.CancelFunc
}

// New creates a new Server instance from the given configuration.
func New(cfg config.Provider) (*Server, error) {
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	deps, err := app.Resolve(app.NewContainer(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 1 day
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:           e,
		Cfg:         cfg,
		Deps:        deps,
		Registry:    registry.New(cfg),
		modules:     app.NewModules(deps),
		homeHandler: handlers.NewHomeHandler(deps.Renderer, cfg.GetAppName()),
	}, nil
}

// setupErrorHandling logs unhandled errors with a stack trace and leaves
// echo.HTTPError responses to the default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err), c)
	}
}

// Modules returns the modules mounted by the server.
func (s *Server) Modules() []module.Module {
	return s.modules
}
