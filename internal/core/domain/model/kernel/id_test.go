package kernel_test

import (
	"testing"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should accept positive values", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
	})

	for _, v := range []int64{0, -1, -900} {
		t.Run("should reject non-positive values", func(t *testing.T) {
			_, err := kernel.NewID(v)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not greater than 0")
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := kernel.ParseID("17")
	require.NoError(t, err)
	assert.True(t, id.IsEqual(kernel.MustNewID(17)))

	_, err = kernel.ParseID("abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.ParseID("0")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestID_Validate(t *testing.T) {
	var zero kernel.ID

	assert.Equal(t, kernel.ErrIDIsNotConstructed, zero.Validate())
	assert.False(t, zero.IsEqual(kernel.MustNewID(1)))
}

func TestMustNewID_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewID(0) })
}
