package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// MetaKeyEventDescription carries Event.Description on published messages.
const MetaKeyEventDescription = "event_description"

// Event[T] binds a topic name to its payload type so publishers and
// subscribers cannot disagree on the shape of a message.
type Event[T any] struct {
	topicName   string
	description string
}

// NewEvent creates a typed event for the given topic.
func NewEvent[T any](name string, description string) Event[T] {
	return Event[T]{topicName: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Description returns the human readable description of the event.
func (e Event[T]) Description() string {
	return e.description
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:    event.Name(),
		UserID:   userID,
		Payload:  data,
		Metadata: map[string]string{
			"content_type":          "application/json",
			MetaKeyEventDescription: event.Description(),
		},
	})
}

// Subscribe decodes every message on the event's topic into T before calling fn.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], fn func(ctx context.Context, userID string, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", event.Name(), err)
		}
		return fn(ctx, msg.UserID, payload)
	})
}
