package jigsaw

import "honnef.co/go/jigsaw/curve"

// newPiece draws four independent edges, in the order top, right, bottom,
// left, and turns each into place.
func newPiece(x, y int, r *Random) Piece {
	top := newEdge(r)
	right := RotateEdge90(newEdge(r))
	bottom := RotateEdge90(RotateEdge90(newEdge(r)))
	left := RotateEdge90(RotateEdge90(RotateEdge90(newEdge(r))))
	return Piece{
		X:     x,
		Y:     y,
		Edges: [4]Edge{top, right, bottom, left},
	}
}

// mirror makes pieces in odd columns start at the right-hand corner of their
// cell, tracing top and bottom in the opposite direction, and pieces in odd
// rows start at the bottom. Afterwards the two pieces on either side of a
// shared border trace it from the same point in the same direction, using the
// same slot.
func mirror(p Piece) Piece {
	if p.X%2 == 1 {
		p.Move.X = 1
		p.Edges[Top] = FlipEdge(p.Edges[Top])
		p.Edges[Bottom] = FlipEdge(p.Edges[Bottom])
	}
	if p.Y%2 == 1 {
		p.Move.Y = 1
		p.Edges[Right] = FlipEdge(p.Edges[Right])
		p.Edges[Left] = FlipEdge(p.Edges[Left])
	}
	return p
}

// shareEdges returns a copy of pieces in which every piece uses the edges of
// its left and top neighbors for the borders it shares with them. Neighbors
// are read from the input, never from already rewritten pieces.
func shareEdges(pieces []Piece, piecesX int) []Piece {
	out := make([]Piece, len(pieces))
	for i, p := range pieces {
		if p.X > 0 {
			from := pieces[i-1]
			p.Edges[p.Slot(Left)] = from.Outline(Right)
		}
		if p.Y > 0 {
			from := pieces[i-piecesX]
			p.Edges[p.Slot(Top)] = from.Outline(Bottom)
		}
		out[i] = p
	}
	return out
}

// nominalDelta is the pen movement of the edge in slot s of p: a unit step
// along the cell's side, reversed where mirroring reversed the traversal.
func nominalDelta(p Piece, s Side) curve.Vec2 {
	d := [4]curve.Vec2{
		Top:    curve.Vec(1, 0),
		Right:  curve.Vec(0, 1),
		Bottom: curve.Vec(-1, 0),
		Left:   curve.Vec(0, -1),
	}[s]
	switch s {
	case Top, Bottom:
		if p.X%2 == 1 {
			d = d.Negate()
		}
	case Left, Right:
		if p.Y%2 == 1 {
			d = d.Negate()
		}
	}
	return d
}
