package commands

import (
	"context"
	"fmt"
	"time"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"
)

// OrderLister lists the orders currently at a status.
type OrderLister interface {
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}

// RefreshBoardCommandHandler counts the orders at every status and replaces
// the stored board snapshot. A failed refresh keeps the previous snapshot.
type RefreshBoardCommandHandler struct {
	lister OrderLister
	store  ports.BoardStore
	now    func() time.Time
}

func NewRefreshBoardCommandHandler(lister OrderLister, store ports.BoardStore) RefreshBoardCommandHandler {
	return RefreshBoardCommandHandler{
		lister: lister,
		store:  store,
		now:    time.Now,
	}
}

// Handle queries the backend once per status and saves the counts only when
// every call succeeded.
func (h RefreshBoardCommandHandler) Handle(ctx context.Context, cmd RefreshBoardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		orders, err := h.lister.ListByStatus(ctx, status)
		if err != nil {
			return fmt.Errorf("list orders at %s: %w", status, err)
		}
		counts[status] = len(orders)
	}

	h.store.Save(ports.BoardSnapshot{
		Counts:      counts,
		RefreshedAt: h.now().UTC(),
	})
	return nil
}
