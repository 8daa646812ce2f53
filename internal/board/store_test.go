package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	id, b := s.Create()
	require.NotEmpty(t, id)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, b, got)

	otherID, other := s.Create()
	assert.NotEqual(t, id, otherID)
	assert.NotSame(t, b, other)

	s.Delete(id)
	_, ok = s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(10 * time.Minute)
	s.now = func() time.Time { return now }

	idle, _ := s.Create()
	active, _ := s.Create()

	now = now.Add(8 * time.Minute)
	_, ok := s.Get(active)
	require.True(t, ok)

	evicted := s.Sweep(now.Add(5 * time.Minute))

	assert.Equal(t, 1, evicted)
	_, ok = s.Get(idle)
	assert.False(t, ok)
	_, ok = s.Get(active)
	assert.True(t, ok)
}

func TestMemoryStore_RunJanitor(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	s.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
