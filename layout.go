package jigsaw

import (
	"fmt"
	"log/slog"
	"math"

	"honnef.co/go/jigsaw/curve"
)

// SnapGrid is the spacing, in pixels, of the grid that piece sizes and
// scattered positions are aligned to.
const SnapGrid = 20

// startPieceSize is the largest piece edge length GridFor tries.
const startPieceSize = 16 * SnapGrid

// sizeVariants are the snap steps subtracted from the width and height of
// the current square piece size, in the order they are tried.
var sizeVariants = [...][2]float64{{0, 1}, {1, 0}, {1, 1}, {2, 0}, {0, 2}, {2, 1}, {1, 2}}

// Grid is the layout of a level: the board's dimensions in pieces and the
// pixel size of a single piece.
type Grid struct {
	PiecesX   int
	PiecesY   int
	PieceSize curve.Size
}

// Config returns the cutout configuration for the grid.
func (g Grid) Config(seed string) Config {
	return Config{PiecesX: g.PiecesX, PiecesY: g.PiecesY, Seed: seed}
}

// TextureSize returns the pixel size of the whole board.
func (g Grid) TextureSize() curve.Size {
	return curve.Sz(float64(g.PiecesX)*g.PieceSize.Width, float64(g.PiecesY)*g.PieceSize.Height)
}

// Margin returns the offset that centers the board on a canvas.
func (g Grid) Margin(canvas curve.Size) curve.Vec2 {
	return canvas.AsVec2().Sub(g.TextureSize().AsVec2()).Mul(0.5)
}

// Board returns the rectangle the board covers when centered on a canvas.
func (g Grid) Board(canvas curve.Size) curve.Rect {
	return curve.NewRectFromOrigin(curve.Pt(0, 0), g.TextureSize()).Translate(g.Margin(canvas))
}

// GridFor picks the largest piece size for which a grid of at least
// targetPieces pieces fits on the canvas, leaving about half a piece of room
// in each direction.
//
// Piece sizes start at 320×320 pixels. Each round tries narrower and shorter
// variants, by up to two snap steps, of the current square size before
// shrinking it by one snap step. GridFor returns ErrPieceCount for
// non-positive targets and ErrNoLayout when even the smallest pieces do not
// produce enough of them.
func GridFor(targetPieces int, canvas curve.Size) (Grid, error) {
	if targetPieces < 1 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrPieceCount, targetPieces)
	}
	if canvas.Empty() {
		return Grid{}, fmt.Errorf("%w: got %s", ErrInvalidSize, canvas)
	}
	fit := func(canvas, piece float64) int {
		return max(1, int(math.Floor(canvas/piece-0.5)))
	}
	for size := float64(startPieceSize); size > 2*SnapGrid; size -= SnapGrid {
		for _, v := range sizeVariants {
			piece := curve.Sz(size-v[0]*SnapGrid, size-v[1]*SnapGrid)
			g := Grid{
				PiecesX:   fit(canvas.Width, piece.Width),
				PiecesY:   fit(canvas.Height, piece.Height),
				PieceSize: piece,
			}
			if g.PiecesX*g.PiecesY >= targetPieces {
				Logger().Debug("jigsaw: chose grid",
					slog.Int("targetPieces", targetPieces),
					slog.Int("piecesX", g.PiecesX),
					slog.Int("piecesY", g.PiecesY),
					slog.Any("pieceSize", piece))
				return g, nil
			}
		}
	}
	return Grid{}, fmt.Errorf("%w: %d pieces on %s", ErrNoLayout, targetPieces, canvas)
}

// Scatter returns a random starting offset for every piece of the grid, in
// raster order.
//
// Pieces are drawn as full-size textures clipped to their outline, so an
// offset of zero places a piece in its solved position. Each offset puts the
// piece's cell somewhere inside the texture, relative to that solved position,
// and is snapped to the grid. Scatter consumes two values of r per piece.
func (g Grid) Scatter(r *Random) []curve.Vec2 {
	tex := g.TextureSize()
	pw, ph := int(g.PieceSize.Width), int(g.PieceSize.Height)
	out := make([]curve.Vec2, 0, g.PiecesX*g.PiecesY)
	for y := 0; y < g.PiecesY; y++ {
		for x := 0; x < g.PiecesX; x++ {
			dx := r.IntN(int(tex.Width)-pw) - x*pw
			dy := r.IntN(int(tex.Height)-ph) - y*ph
			// Truncated remainder, so negative offsets snap towards zero.
			dx -= dx % SnapGrid
			dy -= dy % SnapGrid
			out = append(out, curve.Vec(float64(dx), float64(dy)))
		}
	}
	return out
}

// Solved reports whether every piece is within tolerance pixels of its solved
// position, given offsets as returned by Scatter.
func Solved(offsets []curve.Vec2, tolerance float64) bool {
	for _, off := range offsets {
		if off.Hypot() > tolerance {
			return false
		}
	}
	return true
}
