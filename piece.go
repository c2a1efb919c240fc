package jigsaw

import (
	"fmt"

	"honnef.co/go/jigsaw/curve"
)

// Side names one side of a piece's cell. It is also the index of the edge
// that the piece draws in that position when neither its column nor its row is
// mirrored.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) opposite() Side {
	return (s + 2) % 4
}

// Piece is one cell of the board and the outline cut around it.
//
// The outline starts at Move and draws Edges in order, each edge continuing
// where the previous one ended. In a finished [PieceSet], Move and all edge
// deltas are in board-fraction space, where the whole board is the unit
// square.
type Piece struct {
	X, Y  int
	Move  curve.Point
	Edges [4]Edge
}

// Slot returns the index into Edges of the edge drawn along the given side of
// the cell. Pieces in odd columns start drawing at the right-hand corner and
// pieces in odd rows at the bottom, which swaps the slots of the affected
// sides.
func (p Piece) Slot(side Side) Side {
	switch side {
	case Top, Bottom:
		if p.Y%2 == 1 {
			return side.opposite()
		}
	case Left, Right:
		if p.X%2 == 1 {
			return side.opposite()
		}
	}
	return side
}

// Outline returns the edge drawn along the given side of the cell.
func (p Piece) Outline(side Side) Edge {
	return p.Edges[p.Slot(side)]
}

// Path returns the closed outline of the piece in absolute coordinates of a
// board drawn at the given size, typically the pixel size of the puzzle
// texture.
func (p Piece) Path(size curve.Size) curve.BezPath {
	pos := p.Move
	path := make(curve.BezPath, 0, 2+4*4)
	path.MoveTo(pos)
	for _, e := range p.Edges {
		for _, s := range e {
			switch s.Kind {
			case LineKind:
				pos = pos.Translate(s.To)
				path.LineTo(pos)
			case CubicKind:
				c1 := pos.Translate(s.C1)
				c2 := pos.Translate(s.C2)
				pos = pos.Translate(s.To)
				path.CubicTo(c1, c2, pos)
			}
		}
	}
	path.ClosePath()
	return path.Transform(curve.Scale(size.Width, size.Height))
}

// Bounds returns the tight bounding box of the piece's outline on a board of
// the given size. Dimples make it larger than the piece's cell.
func (p Piece) Bounds(size curve.Size) curve.Rect {
	return p.Path(size).BoundingBox()
}

// Contains reports whether pt, in the coordinates of a board of the given
// size, lies inside the piece's outline, dimples included.
func (p Piece) Contains(size curve.Size, pt curve.Point) bool {
	path := p.Path(size)
	if !path.ControlBox().Contains(pt) {
		return false
	}
	tolerance := 1e-3 * max(size.Width, size.Height)
	return path.Winding(pt, tolerance) != 0
}

// PieceSet is a complete cutout: every piece of a PiecesX×PiecesY board in
// raster order. It is not modified after [Cutout] returns it.
type PieceSet struct {
	PiecesX int
	PiecesY int
	Seed    string
	Pieces  []Piece
}

// Index returns the raster index of the piece at (x, y), or -1 if the
// coordinates are outside the board.
func (ps *PieceSet) Index(x, y int) int {
	if x < 0 || y < 0 || x >= ps.PiecesX || y >= ps.PiecesY {
		return -1
	}
	return y*ps.PiecesX + x
}

// At returns the piece at (x, y).
func (ps *PieceSet) At(x, y int) (Piece, bool) {
	i := ps.Index(x, y)
	if i < 0 || i >= len(ps.Pieces) {
		return Piece{}, false
	}
	return ps.Pieces[i], true
}

// Cell returns the rectangle a piece covers when the puzzle is solved, on a
// board of the given size.
func (ps *PieceSet) Cell(x, y int, size curve.Size) curve.Rect {
	w := size.Width / float64(ps.PiecesX)
	h := size.Height / float64(ps.PiecesY)
	return curve.NewRectFromOrigin(curve.Pt(float64(x)*w, float64(y)*h), curve.Sz(w, h))
}
