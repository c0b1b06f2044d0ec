package order_test

import (
	"testing"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipants_IsUnsetOrAssignedTo(t *testing.T) {
	seven := kernel.MustNewID(7)
	nine := kernel.MustNewID(9)
	p := order.NewParticipants(&seven, nil, nil)

	assert.True(t, p.IsUnsetOrAssignedTo(order.SlotDie, seven), "assignee may act")
	assert.False(t, p.IsUnsetOrAssignedTo(order.SlotDie, nine), "other user may not act")
	assert.True(t, p.IsUnsetOrAssignedTo(order.SlotDesigner, nine), "unassigned slot is open")
	assert.True(t, p.IsUnsetOrAssignedTo(order.SlotMilling, nine), "unassigned slot is open")
}

func TestParticipants_AreCopied(t *testing.T) {
	id := kernel.MustNewID(3)
	p := order.NewParticipants(nil, &id, nil)

	id = kernel.MustNewID(4)
	got := p.Get(order.SlotDesigner)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.Int64())

	changed := p.With(order.SlotDesigner, kernel.MustNewID(5))
	assert.Equal(t, int64(3), p.Get(order.SlotDesigner).Int64())
	assert.Equal(t, int64(5), changed.Get(order.SlotDesigner).Int64())
}

func TestParseSlot(t *testing.T) {
	testCases := map[string]order.Slot{
		"dado":      order.SlotDie,
		"disenador": order.SlotDesigner,
		"fresadora": order.SlotMilling,
	}
	for name, expected := range testCases {
		slot, err := order.ParseSlot(name)
		require.NoError(t, err)
		assert.Equal(t, expected, slot)
		assert.Equal(t, name, slot.String())
	}

	_, err := order.ParseSlot("empaque")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "none", order.NoSlot.String())
}

func TestSlot_Stage(t *testing.T) {
	assert.Equal(t, order.Die, order.SlotDie.Stage())
	assert.Equal(t, order.Design, order.SlotDesigner.Stage())
	assert.Equal(t, order.Milling, order.SlotMilling.Stage())
	assert.Equal(t, order.Unknown, order.NoSlot.Stage())
}
