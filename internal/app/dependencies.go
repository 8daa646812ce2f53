package app

import (
	"github.com/nfrund/adhdhub/internal/board"
	"github.com/nfrund/adhdhub/internal/config"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/nfrund/adhdhub/internal/modules/support"
	"github.com/nfrund/adhdhub/internal/pubsub"
	"github.com/nfrund/adhdhub/internal/rendering"
	"github.com/samber/do/v2"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Config     config.Provider
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Bus        *pubsub.WatermillBridge
	Renderer   rendering.Renderer
	BoardStore *board.MemoryStore
	Content    *content.Source
	Tracing    *Tracing
}

// Resolve builds every core service from the container.
func Resolve(i do.Injector) (Dependencies, error) {
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return Dependencies{}, err
	}
	renderer, err := do.Invoke[rendering.Renderer](i)
	if err != nil {
		return Dependencies{}, err
	}
	tracing, err := do.Invoke[*Tracing](i)
	if err != nil {
		return Dependencies{}, err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return Dependencies{}, err
	}
	store, err := do.Invoke[*board.MemoryStore](i)
	if err != nil {
		return Dependencies{}, err
	}
	source, err := do.Invoke[*content.Source](i)
	if err != nil {
		return Dependencies{}, err
	}

	return Dependencies{
		Config:     cfg,
		Publisher:  bus,
		Subscriber: bus,
		Bus:        bus,
		Renderer:   renderer,
		BoardStore: store,
		Content:    source,
		Tracing:    tracing,
	}, nil
}

// supportDeps creates the dependency struct for the support module.
func supportDeps(deps Dependencies) support.Dependencies {
	return support.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
		Store:      deps.BoardStore,
		Source:     deps.Content,
	}
}
