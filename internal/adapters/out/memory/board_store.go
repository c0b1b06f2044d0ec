// Package memory holds process-local state. Nothing here survives a restart.
package memory

import (
	"maps"
	"sync"

	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"
)

var _ ports.BoardStore = (*BoardStore)(nil)

// BoardStore keeps the latest pipeline board snapshot. Readers get a copy,
// so a refresh never mutates a snapshot that is being rendered.
type BoardStore struct {
	mu       sync.RWMutex
	snapshot ports.BoardSnapshot
	loaded   bool
}

func NewBoardStore() *BoardStore {
	return &BoardStore{}
}

func (s *BoardStore) Save(snapshot ports.BoardSnapshot) {
	counts := make(map[order.Status]int, len(snapshot.Counts))
	maps.Copy(counts, snapshot.Counts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = ports.BoardSnapshot{Counts: counts, RefreshedAt: snapshot.RefreshedAt}
	s.loaded = true
}

func (s *BoardStore) Load() (ports.BoardSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return ports.BoardSnapshot{}, false
	}
	return ports.BoardSnapshot{
		Counts:      maps.Clone(s.snapshot.Counts),
		RefreshedAt: s.snapshot.RefreshedAt,
	}, true
}
