package apperror

import "errors"

var (
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrStrategyFault = errors.New("computer strategy chose an unplayable cell")
)
