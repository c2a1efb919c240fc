package jigsaw

import (
	"fmt"
	"io"
	"strings"

	"honnef.co/go/jigsaw/curve"
)

// CutoutID returns the id of the clip path of the piece with the given raster
// index: piece-1 for the first piece.
func CutoutID(index int) string {
	return fmt.Sprintf("piece-%d", index+1)
}

var numberFormat = curve.SVGOptions{}

// PathData returns the piece's outline as SVG path data in board-fraction
// space: a move to the start point, every segment of the four edges as a
// relative command, and a close path.
func (p Piece) PathData() string {
	var sb strings.Builder
	sb.WriteString("M ")
	sb.WriteString(numberFormat.FormatNumber(p.Move.X))
	sb.WriteByte(' ')
	sb.WriteString(numberFormat.FormatNumber(p.Move.Y))
	for _, e := range p.Edges {
		for _, s := range e {
			sb.WriteByte(' ')
			sb.WriteByte(s.Command())
			for _, arg := range s.Args() {
				sb.WriteByte(' ')
				sb.WriteString(numberFormat.FormatNumber(arg))
			}
		}
	}
	sb.WriteString(" Z")
	return sb.String()
}

// SVG returns the cutout as an SVG element defining one clip path per piece.
// See [PieceSet.WriteSVG].
func (ps *PieceSet) SVG() string {
	sb := &strings.Builder{}
	ps.WriteSVG(sb)
	return sb.String()
}

// WriteSVG writes an invisible SVG element whose defs hold one clipPath per
// piece, in raster order. Clip paths use objectBoundingBox units, so they
// apply to an element of any size showing the whole board; their ids are
// given by [CutoutID] and the piece's grid position is in data-x and data-y.
func (ps *PieceSet) WriteSVG(w io.Writer) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	writef("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"0\" height=\"0\" viewBox=\"0 0 1 1\">\n\t<defs>\n")
	for i, p := range ps.Pieces {
		writef("\t\t<clipPath id=%q clipPathUnits=\"objectBoundingBox\" data-x=\"%d\" data-y=\"%d\"><path d=%q /></clipPath>\n",
			CutoutID(i), p.X, p.Y, p.PathData())
	}
	writef("\t</defs>\n</svg>\n")
	return err
}

// WritePreview writes a standalone SVG document of the given pixel size that
// strokes the outline of every piece.
func (ps *PieceSet) WritePreview(w io.Writer, size curve.Size) error {
	if size.Empty() {
		return fmt.Errorf("%w: got %s", ErrInvalidSize, size)
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	opts := curve.SVGOptions{MaxPrecision: 3}
	width, height := opts.FormatNumber(size.Width), opts.FormatNumber(size.Height)
	writef("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		width, height, width, height)
	writef("\t<rect width=\"%s\" height=\"%s\" fill=\"#aaaaaa\" />\n", width, height)
	for i, p := range ps.Pieces {
		writef("\t<path id=%q d=%q fill=\"none\" stroke=\"lightgrey\" stroke-width=\"2\" />\n",
			CutoutID(i), p.Path(size).SVG(opts))
	}
	writef("</svg>\n")
	return err
}
