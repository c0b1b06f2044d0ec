package commands_test

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

func (m *MockOrderGateway) UpdateStatus(ctx context.Context, id kernel.ID, expected, next order.Status) error {
	args := m.Called(ctx, id, expected, next)
	return args.Error(0)
}

func (m *MockOrderGateway) UpdateParticipants(
	ctx context.Context,
	id kernel.ID,
	expected order.Status,
	participants order.Participants,
) error {
	args := m.Called(ctx, id, expected, participants)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestOrder(t *testing.T, id int64, status order.Status, participants order.Participants) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:              kernel.MustNewID(id),
		Status:          status,
		Priority:        3,
		Participants:    participants,
		ClientID:        kernel.MustNewID(900),
		DeliveryAddress: "Av. Juarez 100",
		CreatedAt:       time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func idPtr(v int64) *kernel.ID {
	id := kernel.MustNewID(v)
	return &id
}
