package guard_test

import (
	"errors"
	"testing"

	"mota/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the given error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInStruct(t *testing.T) {
	type ticket struct {
		number int
		guard  guard.ConstructorGuard
	}
	errTicket := errors.New("ticket must be created via newTicket")
	newTicket := func(n int) ticket { return ticket{number: n, guard: guard.NewConstructorGuard()} }

	require.NoError(t, newTicket(3).guard.Validate(errTicket))

	var zero ticket
	require.ErrorIs(t, zero.guard.Validate(errTicket), errTicket)

	copied := newTicket(5)
	clone := copied
	require.NoError(t, clone.guard.Validate(errTicket))
}
