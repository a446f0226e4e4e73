package apperror

import "errors"

var (
	ErrInvalidSpace = errors.New("invalid space")
	ErrInvalidMove  = errors.New("invalid move")
	ErrHistoryFull  = errors.New("game history full")
	ErrGameNotFound = errors.New("game not found")
)
