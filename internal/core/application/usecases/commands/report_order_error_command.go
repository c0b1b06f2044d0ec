package commands

import (
	"errors"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/guard"
)

var ErrReportOrderErrorCommandIsNotConstructed = errors.New(
	"ReportOrderErrorCommand must be created via NewReportOrderErrorCommand constructor",
)

// ReportOrderErrorCommand diverts an order to Rechazado. Only the doctor (at Confirmar) and quality control (at Control de calidad) may report an error.
type ReportOrderErrorCommand struct {
	actor   actor.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewReportOrderErrorCommand validates the actor and the order id.
func NewReportOrderErrorCommand(a actor.Actor, orderID kernel.ID) (ReportOrderErrorCommand, error) {
	if err := validateTarget(a, orderID); err != nil {
		return ReportOrderErrorCommand{}, err
	}
	return ReportOrderErrorCommand{
		actor:   a,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportOrderErrorCommand) Validate() error {
	return c.guard.Validate(ErrReportOrderErrorCommandIsNotConstructed)
}

func (c ReportOrderErrorCommand) Actor() actor.Actor { return c.actor }

func (c ReportOrderErrorCommand) OrderID() kernel.ID { return c.orderID }
