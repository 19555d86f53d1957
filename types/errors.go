package types

import "errors"

var (
	// ErrInvalidInput is returned for malformed grids, color counts and subdivision counts
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexOutOfRange is returned for control point or patch indices outside the grid
	ErrIndexOutOfRange = errors.New("index out of range")
)
