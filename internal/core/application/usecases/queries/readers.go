// Package queries contains read-only operations over backend orders and the
// cached pipeline board. Queries never change state and never publish events.
package queries

import (
	"context"
	"errors"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"
)

// ErrBoardIsNotReady is returned until the first board refresh completed.
var ErrBoardIsNotReady = errors.New("pipeline board is not ready yet")

type (
	// OrderReader fetches one order from the backend.
	OrderReader interface {
		Get(ctx context.Context, id kernel.ID) (*order.Order, error)
	}

	// OrderLister fetches every order at a status from the backend.
	OrderLister interface {
		ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
	}

	// BoardReader reads the cached pipeline board.
	BoardReader interface {
		Load() (ports.BoardSnapshot, bool)
	}
)
