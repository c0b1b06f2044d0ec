package queries

import (
	"context"

	"mota/internal/core/domain/services"
)

// GetOrderQueryHandler reads an order from the backend and evaluates the
// transition policy for the caller.
type GetOrderQueryHandler struct {
	reader OrderReader
	policy services.TransitionPolicy
}

func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader, policy: services.NewTransitionPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:       o,
		Permissions: h.policy.Decide(query.Actor(), o),
	}, nil
}
