package order_test

import (
	"testing"
	"time"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)

func snapshot(status order.Status) order.Snapshot {
	return order.Snapshot{
		ID:              kernel.MustNewID(100),
		Status:          status,
		PaymentStatus:   2,
		Priority:        3,
		ClientID:        kernel.MustNewID(11),
		DeliveryAddress: "Av. Juárez 120",
		CreatedAt:       createdAt,
	}
}

func restore(t *testing.T, s order.Snapshot) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore valid snapshot", func(t *testing.T) {
		o := restore(t, snapshot(order.Milling))

		require.NoError(t, o.Validate())
		assert.Equal(t, int64(100), o.ID().Int64())
		assert.Equal(t, order.Milling, o.Status())
		assert.Equal(t, 2, o.PaymentStatus())
		assert.Equal(t, order.Priority(3), o.Priority())
		assert.Equal(t, int64(11), o.ClientID().Int64())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Nil(t, o.Participants().Get(order.SlotMilling))
	})

	t.Run("should join every validation error", func(t *testing.T) {
		s := snapshot(order.Status(42))
		s.ID = kernel.ID{}
		s.ClientID = kernel.ID{}

		o, err := order.RestoreOrder(s)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "ID must be created")
		assert.Contains(t, err.Error(), "42 is not a valid status")
		assert.Contains(t, err.Error(), "value is required: client")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should keep priority outside the known range", func(t *testing.T) {
		for _, priority := range []order.Priority{0, 6} {
			s := snapshot(order.Milling)
			s.Priority = priority

			o, err := order.RestoreOrder(s)

			require.NoError(t, err)
			assert.Equal(t, priority, o.Priority())
			assert.False(t, o.Priority().IsKnown())

			o.Advance()
			assert.Equal(t, order.QualityControl, o.Status())
		}
	})

	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())

		var nilOrder *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should move milling order to quality control", func(t *testing.T) {
		o := restore(t, snapshot(order.Milling))

		o.Advance()

		assert.Equal(t, order.QualityControl, o.Status())
	})

	t.Run("should leave rejected order unchanged", func(t *testing.T) {
		o := restore(t, snapshot(order.Rejected))

		o.Advance()

		assert.Equal(t, order.Rejected, o.Status())
	})
}

func TestOrder_SideTransitions(t *testing.T) {
	t.Run("should report error on active order", func(t *testing.T) {
		o := restore(t, snapshot(order.QualityControl))

		require.NoError(t, o.ReportError())
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("should keep status when report is invalid", func(t *testing.T) {
		o := restore(t, snapshot(order.Finished))

		require.Error(t, o.ReportError())
		assert.Equal(t, order.Finished, o.Status())
	})

	t.Run("should pause active order", func(t *testing.T) {
		o := restore(t, snapshot(order.Design))

		require.NoError(t, o.Pause())
		assert.Equal(t, order.Paused, o.Status())
	})

	t.Run("should confirm finished order", func(t *testing.T) {
		o := restore(t, snapshot(order.Finished))

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Assign(t *testing.T) {
	user := kernel.MustNewID(7)

	t.Run("should assign station before its stage is passed", func(t *testing.T) {
		o := restore(t, snapshot(order.Die))

		require.NoError(t, o.Assign(order.SlotMilling, user))
		require.NoError(t, o.Assign(order.SlotDie, user))

		assert.True(t, o.Participants().Get(order.SlotMilling).IsEqual(user))
		assert.True(t, o.Participants().Get(order.SlotDie).IsEqual(user))
		assert.Nil(t, o.Participants().Get(order.SlotDesigner))
	})

	t.Run("should refuse assignment after stage is passed", func(t *testing.T) {
		o := restore(t, snapshot(order.QualityControl))

		err := o.Assign(order.SlotMilling, user)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid status to assign fresadora")
		assert.Nil(t, o.Participants().Get(order.SlotMilling))
	})

	t.Run("should refuse assignment on side states", func(t *testing.T) {
		for _, s := range []order.Status{order.Paused, order.Rejected} {
			o := restore(t, snapshot(s))
			require.Error(t, o.Assign(order.SlotDie, user))
		}
	})

	t.Run("should refuse invalid slot or user", func(t *testing.T) {
		o := restore(t, snapshot(order.AwaitingConfirmation))

		require.ErrorIs(t, o.Assign(order.NoSlot, user), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.Assign(order.SlotDie, kernel.ID{}), errs.ErrValueIsRequired)
	})
}

func TestOrder_Fulfillment(t *testing.T) {
	testCases := []struct {
		address string
		pickup  bool
	}{
		{"recoger", true},
		{"RECOGER", true},
		{"  Recoger ", true},
		{"Calle 5 #12", false},
		{"", false},
		{"recoger en sucursal", false},
	}

	for _, tc := range testCases {
		s := snapshot(order.Packaging)
		s.DeliveryAddress = tc.address
		o := restore(t, s)

		assert.Equal(t, tc.pickup, o.IsPickup(), "address %q", tc.address)
		if tc.pickup {
			assert.True(t, order.FulfillmentPickup.Matches(o))
			assert.False(t, order.FulfillmentDelivery.Matches(o))
		} else {
			assert.True(t, order.FulfillmentDelivery.Matches(o))
		}
		assert.True(t, order.FulfillmentAny.Matches(o))
	}
}

func TestParseFulfillment(t *testing.T) {
	f, err := order.ParseFulfillment("")
	require.NoError(t, err)
	assert.Equal(t, order.FulfillmentAny, f)

	f, err = order.ParseFulfillment("Pickup")
	require.NoError(t, err)
	assert.Equal(t, order.FulfillmentPickup, f)

	f, err = order.ParseFulfillment("delivery")
	require.NoError(t, err)
	assert.Equal(t, "delivery", f.String())

	_, err = order.ParseFulfillment("drone")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
