package jigsaw

// cutBorders replaces the edges on the outside of the board by straight
// lines. Corner pieces are cut twice; each rule only touches the slot of its
// own side.
func cutBorders(p Piece, piecesX, piecesY int) Piece {
	if p.Y == 0 {
		p = cutStraight(p, Top)
	}
	if p.X == 0 {
		p = cutStraight(p, Left)
	}
	if p.X == piecesX-1 {
		p = cutStraight(p, Right)
	}
	if p.Y == piecesY-1 {
		p = cutStraight(p, Bottom)
	}
	return p
}

// cutStraight replaces the edge along side by a line in the direction the
// piece traces that side.
func cutStraight(p Piece, side Side) Piece {
	slot := p.Slot(side)
	d := nominalDelta(p, slot)
	p.Edges[slot] = Edge{LineOf(d.X, d.Y)}
	return p
}
