package queries

import (
	"errors"

	"mota/internal/core/domain/model/actor"
	"mota/internal/pkg/guard"
)

var ErrGetStationQueueQueryIsNotConstructed = errors.New(
	"GetStationQueueQuery must be created via NewGetStationQueueQuery constructor",
)

// GetStationQueueQuery lists the orders the caller may advance right now:
// the orders waiting at the caller's station that are unassigned or
// assigned to the caller.
type GetStationQueueQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

func NewGetStationQueueQuery(a actor.Actor) (GetStationQueueQuery, error) {
	if err := a.Validate(); err != nil {
		return GetStationQueueQuery{}, err
	}
	return GetStationQueueQuery{actor: a, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStationQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetStationQueueQueryIsNotConstructed)
}

func (q GetStationQueueQuery) Actor() actor.Actor { return q.actor }
