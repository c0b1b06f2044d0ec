package commands

import (
	"context"
	"fmt"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"

	"go.uber.org/zap"
)

// AssignParticipantCommandHandler writes a station assignment to the backend.
//
// Example:
//
//	handler := NewAssignParticipantCommandHandler(gateway, logger)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrTransitionNotPermitted):
//	    // not an administrator, or the station already finished its work
//	case errors.Is(err, ports.ErrOrderStateChanged):
//	    // someone else moved the order, refresh and retry
//	}
type AssignParticipantCommandHandler struct {
	gateway AssignmentGateway
	policy  services.TransitionPolicy
	logger  *zap.Logger
}

// NewAssignParticipantCommandHandler creates the handler.
func NewAssignParticipantCommandHandler(gateway AssignmentGateway, logger *zap.Logger) AssignParticipantCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return AssignParticipantCommandHandler{
		gateway: gateway,
		policy:  services.NewTransitionPolicy(),
		logger:  logger,
	}
}

// Handle checks the actor before touching the backend, then re-reads the
// order, applies the assignment and writes the participants back together
// with the status it was validated against.
func (h AssignParticipantCommandHandler) Handle(ctx context.Context, cmd AssignParticipantCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	a := cmd.Actor()
	log := h.logger.With(
		zap.Stringer("order_id", cmd.OrderID()),
		zap.Stringer("actor_id", a.ID()),
		zap.Stringer("role", a.Role()),
		zap.Stringer("slot", cmd.Slot()),
	)

	if !h.policy.CanAssign(a) {
		log.Info("assignment denied")
		return nil, fmt.Errorf("assign %s as %s: %w", cmd.Slot(), a.Role(), ErrTransitionNotPermitted)
	}

	o, err := h.gateway.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", cmd.OrderID(), err)
	}

	if err = o.Assign(cmd.Slot(), cmd.UserID()); err != nil {
		log.Info("assignment denied", zap.Stringer("status", o.Status()), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrTransitionNotPermitted, err)
	}

	if err = h.gateway.UpdateParticipants(ctx, o.ID(), o.Status(), o.Participants()); err != nil {
		log.Warn("backend rejected assignment", zap.Error(err))
		return nil, fmt.Errorf("assign %s on order %s: %w", cmd.Slot(), o.ID(), err)
	}

	log.Info("participant assigned", zap.Stringer("user_id", cmd.UserID()))
	return o, nil
}
