package queries_test

import (
	"testing"

	"mota/internal/core/application/usecases/queries"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"
	"mota/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByStatusQueryHandler_Handle(t *testing.T) {
	tests := []struct {
		name        string
		fulfillment order.Fulfillment
		wantIDs     []int64
	}{
		{name: "should return every order", fulfillment: order.FulfillmentAny, wantIDs: []int64{1, 2, 3}},
		{name: "should return pickup orders", fulfillment: order.FulfillmentPickup, wantIDs: []int64{1, 3}},
		{name: "should return delivery orders", fulfillment: order.FulfillmentDelivery, wantIDs: []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			gateway := new(MockOrderGateway)
			gateway.On("ListByStatus", ctx, order.Finished).Return([]*order.Order{
				newTestOrder(t, 1, order.Finished, order.Participants{}, "recoger"),
				newTestOrder(t, 2, order.Finished, order.Participants{}, "Av. Reforma 12"),
				newTestOrder(t, 3, order.Finished, order.Participants{}, "  RECOGER "),
			}, nil).Once()

			query, err := queries.NewGetOrdersByStatusQuery(order.Finished, tt.fulfillment)
			require.NoError(t, err)

			orders, err := queries.NewGetOrdersByStatusQueryHandler(gateway).Handle(ctx, query)

			require.NoError(t, err)
			ids := make([]int64, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID().Int64())
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetOrdersByStatusQueryHandler_Handle_BackendError(t *testing.T) {
	ctx := t.Context()
	gateway := new(MockOrderGateway)
	gateway.On("ListByStatus", ctx, order.Die).Return(nil, ports.ErrBackendUnavailable).Once()

	query, err := queries.NewGetOrdersByStatusQuery(order.Die, order.FulfillmentAny)
	require.NoError(t, err)

	_, err = queries.NewGetOrdersByStatusQueryHandler(gateway).Handle(ctx, query)

	require.ErrorIs(t, err, ports.ErrBackendUnavailable)
}

func TestNewGetOrdersByStatusQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Status(42), order.FulfillmentAny)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, queries.GetOrdersByStatusQuery{}.Validate(), queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
