package eventbus

import (
	"context"

	"freight-matching-platform/internal/domain"
)

// Publisher publishes freight events.
type Publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, domain.Event) error { return nil }
