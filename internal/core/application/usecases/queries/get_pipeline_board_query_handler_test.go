package queries_test

import (
	"testing"
	"time"

	"mota/internal/core/application/usecases/queries"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPipelineBoardQueryHandler_Handle(t *testing.T) {
	t.Run("should list every status with totals", func(t *testing.T) {
		refreshed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		board := new(MockBoardReader)
		board.On("Load").Return(ports.BoardSnapshot{
			Counts:      map[order.Status]int{order.Die: 3, order.Finished: 2},
			RefreshedAt: refreshed,
		}, true).Once()

		resp, err := queries.NewGetPipelineBoardQueryHandler(board).Handle(t.Context(), queries.NewGetPipelineBoardQuery())

		require.NoError(t, err)
		require.Len(t, resp.Columns, len(order.AllStatuses()))
		assert.Equal(t, order.Paused, resp.Columns[0].Status)
		assert.Equal(t, 0, resp.Columns[0].Count)
		assert.Equal(t, queries.BoardColumn{Status: order.Die, Count: 3}, resp.Columns[1])
		assert.Equal(t, 5, resp.Total)
		assert.Equal(t, refreshed, resp.RefreshedAt)
	})

	t.Run("should report a board that was never refreshed", func(t *testing.T) {
		board := new(MockBoardReader)
		board.On("Load").Return(ports.BoardSnapshot{}, false).Once()

		_, err := queries.NewGetPipelineBoardQueryHandler(board).Handle(t.Context(), queries.NewGetPipelineBoardQuery())

		require.ErrorIs(t, err, queries.ErrBoardIsNotReady)
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		board := new(MockBoardReader)

		_, err := queries.NewGetPipelineBoardQueryHandler(board).Handle(t.Context(), queries.GetPipelineBoardQuery{})

		require.ErrorIs(t, err, queries.ErrGetPipelineBoardQueryIsNotConstructed)
	})
}
