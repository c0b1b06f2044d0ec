// Package commands contains the operations that change an order's lifecycle
// state. Every command follows the same path: validate the command, fetch a
// fresh copy of the order from the backend, gate the transition locally and
// write the result back in a single backend call.
package commands

import (
	"context"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
)

// Narrow views of ports.OrderGateway so each handler depends only on the
// backend calls it makes.
type (
	// OrderReader fetches the current state of an order.
	OrderReader interface {
		Get(ctx context.Context, id kernel.ID) (*order.Order, error)
	}

	// StatusWriter persists a status transition on the backend.
	StatusWriter interface {
		UpdateStatus(ctx context.Context, id kernel.ID, expected, next order.Status) error
	}

	// ParticipantsWriter persists station assignments on the backend.
	ParticipantsWriter interface {
		UpdateParticipants(ctx context.Context, id kernel.ID, expected order.Status, participants order.Participants) error
	}

	// StatusGateway is what status transition handlers need.
	StatusGateway interface {
		OrderReader
		StatusWriter
	}

	// AssignmentGateway is what the participant assignment handler needs.
	AssignmentGateway interface {
		OrderReader
		ParticipantsWriter
	}
)
