package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps the boards of active visitors.
type Store interface {
	// Create starts a fresh board and returns its id.
	Create() (string, *Board)
	// Get returns the board for id and marks it as recently used.
	Get(id string) (*Board, bool)
	Delete(id string)
	Len() int
}

type entry struct {
	board    *Board
	lastSeen time.Time
}

// MemoryStore is an in-memory Store. Boards unused for longer than the idle
// TTL are dropped by Sweep.
type MemoryStore struct {
	mu      sync.Mutex
	boards  map[string]*entry
	idleTTL time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore evicting boards idle for longer than idleTTL.
func NewMemoryStore(idleTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		boards:  make(map[string]*entry),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Create implements Store.
func (s *MemoryStore) Create() (string, *Board) {
	id := uuid.NewString()
	b := New()

	s.mu.Lock()
	s.boards[id] = &entry{board: b, lastSeen: s.now()}
	s.mu.Unlock()

	return id, b
}

// Get implements Store.
func (s *MemoryStore) Get(id string) (*Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.boards[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.board, true
}

// Delete implements Store.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	delete(s.boards, id)
	s.mu.Unlock()
}

// Len implements Store.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

// Sweep drops every board idle since before now-idleTTL and returns how many were dropped.
func (s *MemoryStore) Sweep(now time.Time) int {
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.boards {
		if e.lastSeen.Before(cutoff) {
			delete(s.boards, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor calls Sweep every interval until ctx is cancelled.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Board janitor stopped")
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				slog.Debug("Evicted idle boards", "count", n, "remaining", s.Len())
			}
		}
	}
}
