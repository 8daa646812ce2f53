package registry

import (
	"testing"

	"github.com/nfrund/adhdhub/internal/config"
	"github.com/stretchr/testify/assert"
)

type greeter interface{ Greet() string }

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

func TestRegistry(t *testing.T) {
	cfg := &config.Config{AppName: "test"}
	reg := New(cfg)
	key := Key[greeter]("test.greeter")

	assert.Same(t, cfg, reg.Config())

	_, ok := Get(reg, key)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGet(reg, key) })

	Set[greeter](reg, key, englishGreeter{})

	got, ok := Get(reg, key)
	assert.True(t, ok)
	assert.Equal(t, "hello", got.Greet())
	assert.Equal(t, "hello", MustGet(reg, key).Greet())
	assert.Equal(t, []string{"test.greeter"}, reg.Keys())
}

func TestRegistry_WrongType(t *testing.T) {
	reg := New(&config.Config{})
	Set(reg, Key[string]("shared"), "value")

	_, ok := Get(reg, Key[int]("shared"))
	assert.False(t, ok)
}
