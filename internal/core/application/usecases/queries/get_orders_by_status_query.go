package queries

import (
	"errors"

	"mota/internal/core/domain/model/order"
	"mota/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists the orders at one status, optionally limited
// to pickup or delivery orders.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Finished, order.FulfillmentPickup)
//	if err != nil {
//	    return err
//	}
//	ready, err := handler.Handle(ctx, query)
//	fmt.Printf("%d orders waiting at the counter\n", len(ready))
type GetOrdersByStatusQuery struct {
	status      order.Status
	fulfillment order.Fulfillment

	guard guard.ConstructorGuard
}

func NewGetOrdersByStatusQuery(status order.Status, fulfillment order.Fulfillment) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	return GetOrdersByStatusQuery{
		status:      status,
		fulfillment: fulfillment,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Status() order.Status { return q.status }

func (q GetOrdersByStatusQuery) Fulfillment() order.Fulfillment { return q.fulfillment }
