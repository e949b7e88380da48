package port

import (
	"context"
	"time"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/event"
)

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Clock port
// ---------------------------------------------------------------------------

// Clock supplies the current instant to use cases. The domain model never reads the wall
// clock itself.
type Clock interface {
	Now() time.Time
}
