package support

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nfrund/adhdhub/internal/pubsub"
)

// Stats are the counters reported by /adhd/stats.
type Stats struct {
	Posted       int `json:"posted"`
	BoardsSeen   int `json:"boards_seen"`
	ActiveBoards int `json:"active_boards"`
}

// ActivityLog consumes MessagePosted events, logs them and keeps counters.
type ActivityLog struct {
	subscriber pubsub.Subscriber

	mu     sync.Mutex
	posted int
	boards map[string]struct{}
}

// NewActivityLog creates an ActivityLog reading from subscriber.
func NewActivityLog(subscriber pubsub.Subscriber) *ActivityLog {
	return &ActivityLog{
		subscriber: subscriber,
		boards:     make(map[string]struct{}),
	}
}

// Start subscribes to TopicMessagePosted. Events are handled in the background until ctx is done.
func (a *ActivityLog) Start(ctx context.Context) error {
	return pubsub.Subscribe(ctx, a.subscriber, TopicMessagePosted, a.handle)
}

func (a *ActivityLog) handle(ctx context.Context, boardID string, ev MessagePosted) error {
	a.mu.Lock()
	a.posted++
	a.boards[boardID] = struct{}{}
	a.mu.Unlock()

	slog.InfoContext(ctx, "Message posted",
		"board_id", boardID,
		"message_id", ev.MessageID,
		"body_length", ev.BodyLength,
		"total", ev.Total)
	return nil
}

// Stats returns the current counters. ActiveBoards is filled in by the caller.
func (a *ActivityLog) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{Posted: a.posted, BoardsSeen: len(a.boards)}
}
