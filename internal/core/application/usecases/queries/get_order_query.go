package queries

import (
	"errors"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"
	"mota/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order together with what the caller may do to it.
//
// Example:
//
//	query, err := NewGetOrderQuery(currentActor, kernel.MustNewID(42))
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if resp.Permissions.CanAdvance {
//	    fmt.Printf("next stage: %s\n", resp.Permissions.NextStatus)
//	}
type GetOrderQuery struct {
	actor   actor.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates the caller and the order id.
func NewGetOrderQuery(a actor.Actor, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(a.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: a, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() actor.Actor { return q.actor }

func (q GetOrderQuery) OrderID() kernel.ID { return q.orderID }

// GetOrderQueryResponse is the order and the caller's permissions on it.
type GetOrderQueryResponse struct {
	Order       *order.Order
	Permissions services.Decision
}
