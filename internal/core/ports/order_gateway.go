// Package ports defines the contracts between the MOTA lifecycle core and
// the outside world: the backend that owns orders, the event sink for status
// changes and the in-memory board snapshot.
package ports

import (
	"context"
	"errors"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
)

var (
	// ErrOrderStateChanged means the backend rejected a write because the
	// order no longer matches what the caller validated against. The caller
	// must re-fetch before offering a retry.
	ErrOrderStateChanged = errors.New("order state changed, refresh and retry")

	// ErrBackendTimeout means the request did not complete within the client
	// timeout. It is not retried automatically.
	ErrBackendTimeout = errors.New("backend request timed out")

	// ErrBackendUnavailable covers transport failures and unexpected responses.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// OrderGateway is the backend, the system of record for orders.
// Lookups of unknown orders return an error wrapping errs.ErrObjectNotFound.
type OrderGateway interface {
	// Get fetches the current state of one order.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// ListByStatus fetches every order currently at status.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// UpdateStatus writes next as the order's status. expected is the status
	// the caller validated the transition against; a backend that detects a
	// mismatch answers with ErrOrderStateChanged.
	UpdateStatus(ctx context.Context, id kernel.ID, expected, next order.Status) error

	// UpdateParticipants writes the station assignees of an order.
	UpdateParticipants(ctx context.Context, id kernel.ID, expected order.Status, participants order.Participants) error
}
