package support

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/nfrund/adhdhub/internal/middleware"
	"github.com/nfrund/adhdhub/internal/module"
	"github.com/nfrund/adhdhub/internal/pubsub"
	"github.com/nfrund/adhdhub/internal/registry"
	"github.com/nfrund/adhdhub/internal/rendering"
)

// SupportModule serves the ADHD information page and its message board.
type SupportModule struct {
	module.BaseModule
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	store      *board.MemoryStore
	source     *content.Source
}

// Dependencies holds all the services that the SupportModule requires to operate.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Store      *board.MemoryStore
	Source     *content.Source
}

// New creates a new instance of the SupportModule, injecting its dependencies.
func New(deps Dependencies) *SupportModule {
	return &SupportModule{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		renderer:   deps.Renderer,
		store:      deps.Store,
		source:     deps.Source,
	}
}

// Name returns the module name. Routes are mounted under /adhd.
func (m *SupportModule) Name() string {
	return "adhd"
}

// Register shares the board store and the content source with the server and other modules.
func (m *SupportModule) Register(reg *registry.Registry) error {
	registry.Set[board.Store](reg, registry.BoardStoreKey, m.store)
	registry.Set(reg, registry.ContentSourceKey, m.source)
	return nil
}

// Boot starts the board janitor and the activity log, then sets up routes.
func (m *SupportModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	go m.store.RunJanitor(ctx, cfg.GetBoardSweepInterval())

	activity := NewActivityLog(m.subscriber)
	if err := activity.Start(ctx); err != nil {
		return fmt.Errorf("failed to start activity log: %w", err)
	}

	slog.Info("Booting SupportModule: Setting up routes...")
	handler := NewHandler(m.store, m.source, m.publisher, m.renderer, activity, cfg.GetAppName())

	g.GET("", handler.PageGet)
	g.GET("/tabs/:tab", handler.TabGet)
	g.PUT("/draft", handler.DraftPut)
	g.POST("/messages", handler.MessagePost)

	// JSON reads share one per-IP limit; page interaction is never limited.
	limit := middleware.RateLimiter(cfg.GetAPIRateLimit())
	g.GET("/messages", handler.MessagesGet, limit)
	g.GET("/stats", handler.StatsGet, limit)

	return nil
}

// Shutdown is called on application termination. Background work stops with the boot context.
func (m *SupportModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down SupportModule...", "boards", m.store.Len())
	return nil
}
