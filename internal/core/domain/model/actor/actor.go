package actor

import (
	"errors"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned for Actor values that did not come from NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Actor is the user on whose behalf an operation runs. It is passed
// explicitly into every lifecycle decision; there is no ambient current user.
type Actor struct {
	userID kernel.ID
	role   Role
	guard  guard.ConstructorGuard
}

// NewActor validates the user id and role.
func NewActor(userID kernel.ID, role Role) (Actor, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: role, guard: guard.NewConstructorGuard()}, nil
}

// MustNewActor is NewActor for tests and fixtures.
func MustNewActor(userID int64, role Role) Actor {
	a, err := NewActor(kernel.MustNewID(userID), role)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Actor) ID() kernel.ID { return a.userID }

func (a Actor) Role() Role { return a.role }

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
