package commands

import (
	"context"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"
	"mota/internal/core/ports"

	"go.uber.org/zap"
)

// ConfirmOrderCommandHandler confirms a finished order after checking CanConfirm against a fresh copy.
type ConfirmOrderCommandHandler struct {
	transitioner transitioner
	policy       services.TransitionPolicy
}

func NewConfirmOrderCommandHandler(
	gateway StatusGateway,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		transitioner: newTransitioner(gateway, publisher, logger),
		policy:       services.NewTransitionPolicy(),
	}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), statusChange{
		name:      "confirm",
		permitted: h.policy.CanConfirm,
		apply:     (*order.Order).Confirm,
	})
}
