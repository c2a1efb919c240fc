package jigsaw

import "encoding/json"

type segmentJSON struct {
	Command string    `json:"command"`
	Args    []float64 `json:"args"`
}

// MarshalJSON encodes the segment as {"command": "c", "args": [...]}.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{
		Command: string(s.Command()),
		Args:    s.Args(),
	})
}

type pieceJSON struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Move  [2]float64 `json:"move"`
	Edges [4]Edge    `json:"edges"`
}

// MarshalJSON encodes the piece with its move point as an [x, y] pair.
func (p Piece) MarshalJSON() ([]byte, error) {
	return json.Marshal(pieceJSON{
		X:     p.X,
		Y:     p.Y,
		Move:  [2]float64{p.Move.X, p.Move.Y},
		Edges: p.Edges,
	})
}

type pieceSetJSON struct {
	PiecesX int     `json:"piecesX"`
	PiecesY int     `json:"piecesY"`
	Seed    string  `json:"seed"`
	Pieces  []Piece `json:"pieces"`
}

// MarshalJSON encodes the set as {"piecesX", "piecesY", "seed", "pieces"}.
func (ps PieceSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(pieceSetJSON{
		PiecesX: ps.PiecesX,
		PiecesY: ps.PiecesY,
		Seed:    ps.Seed,
		Pieces:  ps.Pieces,
	})
}
