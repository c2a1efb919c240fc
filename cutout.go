package jigsaw

import "log/slog"

// Cutout cuts a board of cfg.PiecesX×cfg.PiecesY pieces.
//
// Every curved edge is derived from [StandardEdge] with random handle
// rotations, dimple direction and key point jitter drawn from a [Random]
// seeded by cfg.Seed, piece by piece in raster order and edge by edge from top
// to left. Neighboring pieces share the data of their common edge, which both
// trace from the same point in the same direction, so the outlines tile the
// board without gaps or overlaps. Edges on the outside of the board are
// straight.
//
// The result is a pure function of cfg. Cutout returns ErrInvalidPieces for
// boards without pieces.
func Cutout(cfg Config) (*PieceSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := NewRandom(cfg.Seed)

	pieces := make([]Piece, 0, cfg.PiecesX*cfg.PiecesY)
	for y := 0; y < cfg.PiecesY; y++ {
		for x := 0; x < cfg.PiecesX; x++ {
			pieces = append(pieces, mirror(newPiece(x, y, r)))
		}
	}
	pieces = shareEdges(pieces, cfg.PiecesX)
	for i, p := range pieces {
		p = cutBorders(p, cfg.PiecesX, cfg.PiecesY)
		pieces[i] = normalize(p, cfg.PiecesX, cfg.PiecesY)
	}

	Logger().Debug("jigsaw: cut board",
		slog.Int("piecesX", cfg.PiecesX),
		slog.Int("piecesY", cfg.PiecesY),
		slog.String("seed", cfg.Seed))

	return &PieceSet{
		PiecesX: cfg.PiecesX,
		PiecesY: cfg.PiecesY,
		Seed:    cfg.Seed,
		Pieces:  pieces,
	}, nil
}
