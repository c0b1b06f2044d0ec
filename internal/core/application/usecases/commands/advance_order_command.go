package commands

import (
	"errors"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order to the next pipeline stage on behalf of
// the station (or doctor) currently responsible for it.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(currentActor, kernel.MustNewID(42))
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrTransitionNotPermitted) {
//	    // not this actor's turn
//	}
//	fmt.Printf("order moved %s -> %s\n", result.From, result.To)
type AdvanceOrderCommand struct {
	actor   actor.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand validates the actor and the order id.
func NewAdvanceOrderCommand(a actor.Actor, orderID kernel.ID) (AdvanceOrderCommand, error) {
	if err := validateTarget(a, orderID); err != nil {
		return AdvanceOrderCommand{}, err
	}
	return AdvanceOrderCommand{
		actor:   a,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Actor() actor.Actor { return c.actor }

func (c AdvanceOrderCommand) OrderID() kernel.ID { return c.orderID }
