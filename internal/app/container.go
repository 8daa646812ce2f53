package app

import (
	"context"
	"fmt"

	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/config"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/nfrund/adhdhub/internal/pubsub"
	"github.com/nfrund/adhdhub/internal/rendering"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"
)

// Tracing holds the pub/sub tracer and the function flushing it on shutdown.
type Tracing struct {
	Tracer   trace.Tracer
	Shutdown func(context.Context) error
}

// NewContainer registers the providers of every core service. Services are
// built lazily on first Invoke.
func NewContainer(cfg config.Provider) *do.RootScope {
	injector := do.New()

	do.ProvideValue[config.Provider](injector, cfg)
	do.Provide(injector, provideRenderer)
	do.Provide(injector, provideTracing)
	do.Provide(injector, provideBus)
	do.Provide(injector, provideBoardStore)
	do.Provide(injector, provideContentSource)

	return injector
}

func provideRenderer(i do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideTracing(i do.Injector) (*Tracing, error) {
	cfg := do.MustInvoke[config.Provider](i)
	tracer, shutdown, err := pubsub.SetupOTel(context.Background(), pubsub.TracingConfigFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	return &Tracing{Tracer: tracer, Shutdown: shutdown}, nil
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	tracing, err := do.Invoke[*Tracing](i)
	if err != nil {
		return nil, err
	}
	return pubsub.NewWatermillBridge(tracing.Tracer), nil
}

func provideBoardStore(i do.Injector) (*board.MemoryStore, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return board.NewMemoryStore(cfg.GetBoardIdleTTL()), nil
}

func provideContentSource(i do.Injector) (*content.Source, error) {
	cfg := do.MustInvoke[config.Provider](i)
	if dir := cfg.GetContentDir(); dir != "" {
		return content.NewSource(afero.NewOsFs(), dir)
	}
	return content.NewEmbeddedSource()
}
