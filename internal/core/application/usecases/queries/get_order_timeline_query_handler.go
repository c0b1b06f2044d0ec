package queries

import (
	"context"

	"mota/internal/core/domain/model/order"
)

// GetOrderTimelineQueryHandler maps the current status of an order to its
// completed and pending milestones.
type GetOrderTimelineQueryHandler struct {
	reader OrderReader
}

func NewGetOrderTimelineQueryHandler(reader OrderReader) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{reader: reader}
}

func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) (GetOrderTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	return GetOrderTimelineQueryResponse{
		OrderID: o.ID(),
		Status:  o.Status(),
		Entries: order.BuildTimeline(o),
	}, nil
}
