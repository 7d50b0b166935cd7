package apperror

import "errors"

var (
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrRowOutOfRange    = errors.New("row out of range")

	ErrWrongTokenCount = errors.New("expected two numbers separated by a comma")
	ErrNotInteger      = errors.New("row/column is not an integer")
	ErrIndexFromOne    = errors.New("row/column index must start from 1")

	ErrInputClosed = errors.New("no more input")
)
