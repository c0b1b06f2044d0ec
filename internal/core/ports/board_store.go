package ports

import (
	"time"

	"mota/internal/core/domain/model/order"
)

// BoardSnapshot is the number of orders at each status at a point in time.
type BoardSnapshot struct {
	Counts      map[order.Status]int
	RefreshedAt time.Time
}

// BoardStore keeps the latest snapshot in memory. Nothing is persisted.
type BoardStore interface {
	Save(snapshot BoardSnapshot)
	// Load returns false until the first snapshot is saved.
	Load() (BoardSnapshot, bool)
}
