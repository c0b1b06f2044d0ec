package commands

import (
	"errors"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand records the doctor's acknowledgement of a finished order, moving it to Confirmado.
type ConfirmOrderCommand struct {
	actor   actor.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand validates the actor and the order id.
func NewConfirmOrderCommand(a actor.Actor, orderID kernel.ID) (ConfirmOrderCommand, error) {
	if err := validateTarget(a, orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}
	return ConfirmOrderCommand{
		actor:   a,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) Actor() actor.Actor { return c.actor }

func (c ConfirmOrderCommand) OrderID() kernel.ID { return c.orderID }
