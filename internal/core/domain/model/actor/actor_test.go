package actor_test

import (
	"fmt"
	"testing"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create actor for every valid role", func(t *testing.T) {
		for _, role := range actor.AllRoles() {
			a, err := actor.NewActor(kernel.MustNewID(42), role)

			require.NoError(t, err)
			require.NoError(t, a.Validate())
			assert.Equal(t, role, a.Role())
			assert.Equal(t, int64(42), a.ID().Int64())
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		for _, role := range []actor.Role{actor.RoleUnknown, 6, 9, -1} {
			_, err := actor.NewActor(kernel.MustNewID(1), role)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid role", role.Code()))
		}
	})

	t.Run("should reject missing user", func(t *testing.T) {
		_, err := actor.NewActor(kernel.ID{}, actor.RoleDie)

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var a actor.Actor

		assert.Equal(t, actor.ErrActorIsNotConstructed, a.Validate())
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "doctor", actor.RoleDoctor.String())
	assert.Equal(t, "administrador", actor.RoleAdministrator.String())
	assert.Equal(t, "disenador", actor.RoleDesigner.String())
	assert.Equal(t, "fresadora", actor.RoleMilling.String())
	assert.Equal(t, "dado", actor.RoleDie.String())
	assert.Equal(t, "calidad", actor.RoleQuality.String())
	assert.Equal(t, "empaque", actor.RolePackaging.String())
	assert.Equal(t, "unknown", actor.Role(6).String())
}
