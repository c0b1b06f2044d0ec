package commands_test

import (
	"testing"

	"mota/internal/core/application/usecases/commands"
	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand_Success(t *testing.T) {
	a := actor.MustNewActor(5, actor.RoleDie)

	cmd, err := commands.NewAdvanceOrderCommand(a, kernel.MustNewID(42))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, a, cmd.Actor())
	assert.Equal(t, kernel.MustNewID(42), cmd.OrderID())
}

func TestNewAdvanceOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(actor.Actor{}, kernel.ID{})

	require.Error(t, err)
	require.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestAdvanceOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AdvanceOrderCommand

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrAdvanceOrderCommandIsNotConstructed)
}

func TestStatusCommands_Constructors(t *testing.T) {
	a := actor.MustNewActor(1, actor.RoleDoctor)
	id := kernel.MustNewID(42)

	t.Run("report error", func(t *testing.T) {
		cmd, err := commands.NewReportOrderErrorCommand(a, id)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())

		_, err = commands.NewReportOrderErrorCommand(a, kernel.ID{})
		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
		require.ErrorIs(t, (commands.ReportOrderErrorCommand{}).Validate(), commands.ErrReportOrderErrorCommandIsNotConstructed)
	})

	t.Run("pause", func(t *testing.T) {
		cmd, err := commands.NewPauseOrderCommand(a, id)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, a, cmd.Actor())

		_, err = commands.NewPauseOrderCommand(actor.Actor{}, id)
		require.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
		require.ErrorIs(t, (commands.PauseOrderCommand{}).Validate(), commands.ErrPauseOrderCommandIsNotConstructed)
	})

	t.Run("confirm", func(t *testing.T) {
		cmd, err := commands.NewConfirmOrderCommand(a, id)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		_, err = commands.NewConfirmOrderCommand(a, kernel.ID{})
		require.Error(t, err)
		require.ErrorIs(t, (commands.ConfirmOrderCommand{}).Validate(), commands.ErrConfirmOrderCommandIsNotConstructed)
	})
}
