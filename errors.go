package jigsaw

import "errors"

var (
	// ErrInvalidPieces indicates a board with fewer than one column or row.
	ErrInvalidPieces = errors.New("jigsaw: board needs at least one column and one row")
	// ErrPieceCount indicates a non-positive number of requested pieces.
	ErrPieceCount = errors.New("jigsaw: number of pieces must be positive")
	// ErrNoLayout indicates that no piece size fits the requested number of
	// pieces on the canvas.
	ErrNoLayout = errors.New("jigsaw: no layout fits the requested number of pieces")
)

// ErrInvalidSize indicates a drawing size without area.
var ErrInvalidSize = errors.New("jigsaw: size must have positive width and height")
