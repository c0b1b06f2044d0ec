package commands

import (
	"context"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"
	"mota/internal/core/ports"

	"go.uber.org/zap"
)

// ReportOrderErrorCommandHandler rejects an order after checking CanReportError against a fresh copy.
type ReportOrderErrorCommandHandler struct {
	transitioner transitioner
	policy       services.TransitionPolicy
}

func NewReportOrderErrorCommandHandler(
	gateway StatusGateway,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) ReportOrderErrorCommandHandler {
	return ReportOrderErrorCommandHandler{
		transitioner: newTransitioner(gateway, publisher, logger),
		policy:       services.NewTransitionPolicy(),
	}
}

func (h ReportOrderErrorCommandHandler) Handle(ctx context.Context, cmd ReportOrderErrorCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(), statusChange{
		name:      "report",
		permitted: h.policy.CanReportError,
		apply:     (*order.Order).ReportError,
	})
}
