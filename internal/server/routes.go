package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/adhdhub/internal/handlers"
	"github.com/nfrund/adhdhub/internal/registry"
)

// RegisterRoutes sets up the site routes, then registers and boots every
// module. Background work started by modules stops when ctx is cancelled
// or the server shuts down.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/about", s.homeHandler.AboutGet)
	s.E.GET("/health", handlers.HealthGet)

	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}

	for _, m := range s.modules {
		slog.Info("Booting module", "module", m.Name())
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.Registry); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
	}

	if s.Cfg.GetContentWatch() {
		source := registry.MustGet(s.Registry, registry.ContentSourceKey)
		if err := source.Watch(ctx); err != nil {
			return fmt.Errorf("failed to watch content: %w", err)
		}
	}

	return nil
}
