package commands

import (
	"context"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"
	"mota/internal/core/ports"

	"go.uber.org/zap"
)

// PauseOrderCommandHandler pauses an order after checking CanPause against a fresh copy.
type PauseOrderCommandHandler struct {
	transitioner transitioner
	policy       services.TransitionPolicy
}

func NewPauseOrderCommandHandler(
	gateway StatusGateway,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) PauseOrderCommandHandler {
	return PauseOrderCommandHandler{
		transitioner: newTransitioner(gateway, publisher, logger),
		policy:       services.NewTransitionPolicy(),
	}
}

func (h PauseOrderCommandHandler) Handle(ctx context.Context, cmd PauseOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), statusChange{
		name:      "pause",
		permitted: h.policy.CanPause,
		apply:     (*order.Order).Pause,
	})
}
