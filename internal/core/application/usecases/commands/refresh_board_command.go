package commands

import (
	"errors"

	"mota/internal/pkg/guard"
)

var ErrRefreshBoardCommandIsNotConstructed = errors.New(
	"RefreshBoardCommand must be created via NewRefreshBoardCommand constructor",
)

// RefreshBoardCommand rebuilds the in-memory pipeline board from the backend.
// It is parameterless and triggered on a schedule.
type RefreshBoardCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshBoardCommand() RefreshBoardCommand {
	return RefreshBoardCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshBoardCommand) Validate() error {
	return c.guard.Validate(ErrRefreshBoardCommandIsNotConstructed)
}
