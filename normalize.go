package jigsaw

import "honnef.co/go/jigsaw/curve"

// normalize moves the piece from cell space, where every cell is the unit
// square and Move holds corner flags, into board-fraction space.
func normalize(p Piece, piecesX, piecesY int) Piece {
	scaleX := 1 / float64(piecesX)
	scaleY := 1 / float64(piecesY)
	p.Move = curve.Pt((float64(p.X)+p.Move.X)*scaleX, (float64(p.Y)+p.Move.Y)*scaleY)

	scale := curve.Scale(scaleX, scaleY)
	for i, e := range p.Edges {
		out := e.Transform(scale)
		for j := range out {
			out[j] = out[j].Map(positiveZero)
		}
		p.Edges[i] = out
	}
	return p
}

// positiveZero replaces -0, left behind by negated zeros, with 0.
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
