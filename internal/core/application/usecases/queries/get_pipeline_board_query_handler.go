package queries

import (
	"context"
	"time"

	"mota/internal/core/domain/model/order"
)

// BoardColumn is one status column of the pipeline board.
type BoardColumn struct {
	Status order.Status
	Count  int
}

// GetPipelineBoardQueryResponse lists every status in code order, including
// empty ones, so the board layout is stable.
type GetPipelineBoardQueryResponse struct {
	Columns     []BoardColumn
	Total       int
	RefreshedAt time.Time
}

type GetPipelineBoardQueryHandler struct {
	board BoardReader
}

func NewGetPipelineBoardQueryHandler(board BoardReader) GetPipelineBoardQueryHandler {
	return GetPipelineBoardQueryHandler{board: board}
}

// Handle never calls the backend. It returns ErrBoardIsNotReady until the
// refresh job stored a first snapshot.
func (h GetPipelineBoardQueryHandler) Handle(
	_ context.Context,
	query GetPipelineBoardQuery,
) (GetPipelineBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPipelineBoardQueryResponse{}, err
	}

	snapshot, ok := h.board.Load()
	if !ok {
		return GetPipelineBoardQueryResponse{}, ErrBoardIsNotReady
	}

	resp := GetPipelineBoardQueryResponse{RefreshedAt: snapshot.RefreshedAt}
	for _, status := range order.AllStatuses() {
		count := snapshot.Counts[status]
		resp.Columns = append(resp.Columns, BoardColumn{Status: status, Count: count})
		resp.Total += count
	}
	return resp, nil
}
