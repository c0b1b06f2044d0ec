package commands

import (
	"errors"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/guard"
)

var ErrPauseOrderCommandIsNotConstructed = errors.New(
	"PauseOrderCommand must be created via NewPauseOrderCommand constructor",
)

// PauseOrderCommand puts an active order on hold. Administrators only.
type PauseOrderCommand struct {
	actor   actor.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewPauseOrderCommand validates the actor and the order id.
func NewPauseOrderCommand(a actor.Actor, orderID kernel.ID) (PauseOrderCommand, error) {
	if err := validateTarget(a, orderID); err != nil {
		return PauseOrderCommand{}, err
	}
	return PauseOrderCommand{
		actor:   a,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseOrderCommand) Validate() error {
	return c.guard.Validate(ErrPauseOrderCommandIsNotConstructed)
}

func (c PauseOrderCommand) Actor() actor.Actor { return c.actor }

func (c PauseOrderCommand) OrderID() kernel.ID { return c.orderID }
