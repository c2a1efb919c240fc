package jigsaw

import (
	"fmt"
	"strconv"

	"honnef.co/go/jigsaw/curve"
)

type SegmentKind int

const (
	// A straight line to the pen position plus To.
	LineKind SegmentKind = iota + 1
	// A cubic Bézier with control points C1, C2 and end point To, all relative
	// to the pen position.
	CubicKind
)

// Segment is one drawing instruction of an edge. All of its vectors are
// deltas relative to the current pen position, like the lowercase l and c
// commands of SVG path data.
type Segment struct {
	Kind SegmentKind
	C1   curve.Vec2
	C2   curve.Vec2
	To   curve.Vec2
}

// LineOf returns a line segment moving the pen by ⟨dx, dy⟩.
func LineOf(dx, dy float64) Segment {
	return Segment{Kind: LineKind, To: curve.Vec(dx, dy)}
}

// CurveOf returns a cubic segment from relative control points and end point.
func CurveOf(x1, y1, x2, y2, x, y float64) Segment {
	return Segment{
		Kind: CubicKind,
		C1:   curve.Vec(x1, y1),
		C2:   curve.Vec(x2, y2),
		To:   curve.Vec(x, y),
	}
}

// Command returns the SVG path command letter of the segment.
func (s Segment) Command() byte {
	switch s.Kind {
	case LineKind:
		return 'l'
	case CubicKind:
		return 'c'
	default:
		panic(fmt.Sprintf("jigsaw: invalid segment kind %d", s.Kind))
	}
}

// Args returns the numeric arguments of the segment in command order: two for
// a line, six for a cubic.
func (s Segment) Args() []float64 {
	if s.Kind == LineKind {
		return []float64{s.To.X, s.To.Y}
	}
	return []float64{s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y}
}

// Transform applies the linear part of aff to every delta of the segment.
func (s Segment) Transform(aff curve.Affine) Segment {
	s.C1 = s.C1.Transform(aff)
	s.C2 = s.C2.Transform(aff)
	s.To = s.To.Transform(aff)
	return s
}

// Map applies f to every numeric argument.
func (s Segment) Map(f func(float64) float64) Segment {
	s.C1 = s.C1.Map(f)
	s.C2 = s.C2.Map(f)
	s.To = s.To.Map(f)
	return s
}

func (s Segment) String() string {
	buf := []byte{s.Command()}
	for _, arg := range s.Args() {
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, arg, 'f', -1, 64)
	}
	return string(buf)
}

// Edge is one side of a piece. Curved edges have exactly four cubic segments
// (curve in, half dimple, half dimple, curve out); edges on the border of the
// board are a single line.
type Edge []Segment

// Transform returns a new edge with aff applied to every segment.
func (e Edge) Transform(aff curve.Affine) Edge {
	out := make(Edge, len(e))
	for i, s := range e {
		out[i] = s.Transform(aff)
	}
	return out
}

// Delta returns the total pen movement of the edge.
func (e Edge) Delta() curve.Vec2 {
	var d curve.Vec2
	for _, s := range e {
		d = d.Add(s.To)
	}
	return d
}

// IsStraight reports whether the edge consists of a single line.
func (e Edge) IsStraight() bool {
	return len(e) == 1 && e[0].Kind == LineKind
}

func (e Edge) isCurved() bool {
	if len(e) != 4 {
		return false
	}
	for _, s := range e {
		if s.Kind != CubicKind {
			return false
		}
	}
	return true
}

// roundPrecise rounds f to 5 significant digits. Negative zero becomes zero.
func roundPrecise(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', 5, 64), 64)
	if err != nil || r == 0 {
		return 0
	}
	return r
}
