package commands

import (
	"context"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"
	"mota/internal/core/ports"

	"go.uber.org/zap"
)

// AdvanceOrderCommandHandler moves an order one step along the forward chain
// (10→2→3→4→5→6→7) when the transition policy allows the actor to do so.
type AdvanceOrderCommandHandler struct {
	transitioner transitioner
	policy       services.TransitionPolicy
}

// NewAdvanceOrderCommandHandler creates the handler. publisher may be nil.
func NewAdvanceOrderCommandHandler(
	gateway StatusGateway,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		transitioner: newTransitioner(gateway, publisher, logger),
		policy:       services.NewTransitionPolicy(),
	}
}

// Handle re-reads the order, checks CanAdvance against the fresh state and
// writes the next status. A denied transition never reaches the backend.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), statusChange{
		name:      "advance",
		permitted: h.policy.CanAdvance,
		apply: func(o *order.Order) error {
			o.Advance()
			return nil
		},
	})
}
