package queries

import (
	"context"

	"mota/internal/core/domain/model/order"
)

type GetOrdersByStatusQueryHandler struct {
	lister OrderLister
}

func NewGetOrdersByStatusQueryHandler(lister OrderLister) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{lister: lister}
}

// Handle returns the backend's list filtered by fulfillment, in backend order.
func (h GetOrdersByStatusQueryHandler) Handle(ctx context.Context, query GetOrdersByStatusQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.lister.ListByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if query.Fulfillment().Matches(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}
