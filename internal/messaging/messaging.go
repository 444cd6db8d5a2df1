package messaging

import (
	"context"
	"log/slog"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
	Close() error
}

// Nop is a Publisher that drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	slog.DebugContext(ctx, "Event dropped, no broker configured", "topic", topic, "key", key)
	return nil
}

func (Nop) Close() error { return nil }
