package queries

import (
	"errors"

	"mota/internal/pkg/guard"
)

var ErrGetPipelineBoardQueryIsNotConstructed = errors.New(
	"GetPipelineBoardQuery must be created via NewGetPipelineBoardQuery constructor",
)

// GetPipelineBoardQuery reads the cached order counts per status.
type GetPipelineBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPipelineBoardQuery() GetPipelineBoardQuery {
	return GetPipelineBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPipelineBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetPipelineBoardQueryIsNotConstructed)
}
