package queries

import (
	"errors"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/pkg/guard"
)

var ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
	"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
)

// GetOrderTimelineQuery builds the ten milestone progress view of an order.
type GetOrderTimelineQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderTimelineQuery(orderID kernel.ID) (GetOrderTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, err
	}
	return GetOrderTimelineQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

func (q GetOrderTimelineQuery) OrderID() kernel.ID { return q.orderID }

// GetOrderTimelineQueryResponse carries the milestones in display order.
type GetOrderTimelineQueryResponse struct {
	OrderID kernel.ID
	Status  order.Status
	Entries []order.TimelineEntry
}
