package queries

import (
	"context"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"
)

// GetStationQueueQueryHandler lists the actor's work queue. Roles that never
// advance orders get an empty queue without a backend call.
type GetStationQueueQueryHandler struct {
	lister OrderLister
	policy services.TransitionPolicy
}

func NewGetStationQueueQueryHandler(lister OrderLister) GetStationQueueQueryHandler {
	return GetStationQueueQueryHandler{lister: lister, policy: services.NewTransitionPolicy()}
}

func (h GetStationQueueQueryHandler) Handle(ctx context.Context, query GetStationQueueQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	a := query.Actor()
	from, ok := h.policy.AdvanceFrom(a.Role())
	if !ok {
		return []*order.Order{}, nil
	}

	orders, err := h.lister.ListByStatus(ctx, from)
	if err != nil {
		return nil, err
	}

	queue := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if h.policy.CanAdvance(a, o) {
			queue = append(queue, o)
		}
	}
	return queue, nil
}
