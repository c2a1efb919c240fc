package jigsaw

import (
	"fmt"
	"math"
)

// Config selects the board to cut.
type Config struct {
	// PiecesX is the number of columns.
	PiecesX int
	// PiecesY is the number of rows.
	PiecesY int
	// Seed determines every random choice. Equal configs produce equal cutouts.
	Seed string
}

// DefaultConfig returns a 5×5 board with the seed "apple".
func DefaultConfig() Config {
	return Config{
		PiecesX: 5,
		PiecesY: 5,
		Seed:    "apple",
	}
}

// Validate reports ErrInvalidPieces for boards without pieces and for boards
// whose piece count doesn't fit in an int.
func (cfg Config) Validate() error {
	if cfg.PiecesX < 1 || cfg.PiecesY < 1 {
		return fmt.Errorf("%w: got %d×%d", ErrInvalidPieces, cfg.PiecesX, cfg.PiecesY)
	}
	if cfg.PiecesX > math.MaxInt/cfg.PiecesY {
		return fmt.Errorf("%w: %d×%d overflows the piece count", ErrInvalidPieces, cfg.PiecesX, cfg.PiecesY)
	}
	return nil
}
