package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrMatchAbandoned = errors.New("match abandoned before it finished")
)
