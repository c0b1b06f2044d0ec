package commands_test

import (
	"testing"

	"mota/internal/core/application/usecases/commands"
	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignParticipantCommand_Success(t *testing.T) {
	admin := actor.MustNewActor(2, actor.RoleAdministrator)

	cmd, err := commands.NewAssignParticipantCommand(admin, kernel.MustNewID(42), order.SlotMilling, kernel.MustNewID(7))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.SlotMilling, cmd.Slot())
	assert.Equal(t, kernel.MustNewID(7), cmd.UserID())
	assert.Equal(t, kernel.MustNewID(42), cmd.OrderID())
	assert.Equal(t, admin, cmd.Actor())
}

func TestNewAssignParticipantCommand_InvalidSlot(t *testing.T) {
	admin := actor.MustNewActor(2, actor.RoleAdministrator)

	_, err := commands.NewAssignParticipantCommand(admin, kernel.MustNewID(42), order.NoSlot, kernel.MustNewID(7))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAssignParticipantCommand_ReportsEveryProblem(t *testing.T) {
	_, err := commands.NewAssignParticipantCommand(actor.Actor{}, kernel.ID{}, order.NoSlot, kernel.ID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAssignParticipantCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AssignParticipantCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrAssignParticipantCommandIsNotConstructed)
}
