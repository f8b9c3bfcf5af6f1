package model

import "github.com/pkg/errors"

var (
	// ErrFormat marks a persisted grid that cannot be parsed.
	ErrFormat = errors.New("malformed grid")
	// ErrOutOfBounds marks a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidDimensions marks a grid size with fewer than one row or column.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)
