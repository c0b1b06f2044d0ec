package ports

import (
	"context"
	"time"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
)

// StatusChangedEvent is emitted after the backend accepted a transition.
type StatusChangedEvent struct {
	OrderID    kernel.ID
	From       order.Status
	To         order.Status
	ActorID    kernel.ID
	ActorRole  actor.Role
	OccurredAt time.Time
}

// EventPublisher delivers status change events to interested consumers.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
