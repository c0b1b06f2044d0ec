package commands

import (
	"errors"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/pkg/errs"
	"mota/internal/pkg/guard"
)

var ErrAssignParticipantCommandIsNotConstructed = errors.New(
	"AssignParticipantCommand must be created via NewAssignParticipantCommand constructor",
)

// AssignParticipantCommand assigns a user to one station of an order
// (dado, disenador or fresadora). Only administrators may assign, and only
// while the order has not yet moved past the station's stage.
//
// Example:
//
//	cmd, err := NewAssignParticipantCommand(admin, kernel.MustNewID(42), order.SlotDesigner, kernel.MustNewID(7))
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type AssignParticipantCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.ID
	slot    order.Slot
	userID  kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignParticipantCommand validates every field and reports all
// problems at once.
func NewAssignParticipantCommand(
	a actor.Actor,
	orderID kernel.ID,
	slot order.Slot,
	userID kernel.ID,
) (AssignParticipantCommand, error) {
	cmd := AssignParticipantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateTarget(a, orderID),
		cmd.setSlot(slot),
		cmd.setUserID(userID),
	); err != nil {
		return AssignParticipantCommand{}, err
	}

	cmd.actor = a
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignParticipantCommand) Validate() error {
	return c.guard.Validate(ErrAssignParticipantCommandIsNotConstructed)
}

func (c AssignParticipantCommand) Actor() actor.Actor { return c.actor }

func (c AssignParticipantCommand) OrderID() kernel.ID { return c.orderID }

// Slot returns the station being assigned.
func (c AssignParticipantCommand) Slot() order.Slot { return c.slot }

// UserID returns the assignee.
func (c AssignParticipantCommand) UserID() kernel.ID { return c.userID }

func (c *AssignParticipantCommand) setSlot(slot order.Slot) error {
	if slot.Stage() == order.Unknown {
		return errs.NewValueIsInvalidError("slot")
	}

	c.slot = slot
	return nil
}

func (c *AssignParticipantCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}

	c.userID = userID
	return nil
}
