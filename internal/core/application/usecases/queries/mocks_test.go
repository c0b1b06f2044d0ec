package queries_test

import (
	"context"
	"testing"
	"time"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBoardReader struct{ mock.Mock }

func (m *MockBoardReader) Load() (ports.BoardSnapshot, bool) {
	args := m.Called()
	return args.Get(0).(ports.BoardSnapshot), args.Bool(1)
}

func newTestOrder(t *testing.T, id int64, status order.Status, participants order.Participants, address string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:              kernel.MustNewID(id),
		Status:          status,
		Priority:        2,
		Participants:    participants,
		ClientID:        kernel.MustNewID(900),
		DeliveryAddress: address,
		CreatedAt:       time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func idPtr(v int64) *kernel.ID {
	id := kernel.MustNewID(v)
	return &id
}
