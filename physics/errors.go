package physics

import "errors"

var (
	ErrInvalidHalfExtent = errors.New("physics: invalid half extent")
	ErrUnknownBody       = errors.New("physics: unknown body")
	ErrInvalidTuning     = errors.New("physics: invalid tuning")
)
