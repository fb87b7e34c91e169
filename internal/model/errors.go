package model

import "errors"

// Engine error kinds. All are precondition violations detected before any
// mutation; the board is never left partially changed after one of these.
var (
	// ErrOutOfBounds marks coordinates outside the board.
	ErrOutOfBounds = errors.New("coordinates out of board bounds")

	// ErrAreaOccupied marks a placement target overlapping a filled tile.
	ErrAreaOccupied = errors.New("target area overlaps a filled tile")

	// ErrDuplicateItem marks a placement of an already-bound item.
	ErrDuplicateItem = errors.New("item is already placed")

	// ErrUnknownItem marks an operation addressing an unbound item.
	ErrUnknownItem = errors.New("item is not placed on the board")

	// ErrBadSpan marks a non-positive row or column span.
	ErrBadSpan = errors.New("spans must be at least 1")

	// ErrBadConfig marks non-positive board dimensions at construction.
	ErrBadConfig = errors.New("board dimensions must be positive")
)
