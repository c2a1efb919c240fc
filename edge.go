package jigsaw

import "honnef.co/go/jigsaw/curve"

// Key point jitter radii, in fractions of a cell.
const (
	dimpleJitter = 0.04
	neckJitter   = 0.01
)

// StandardEdge returns the template every curved edge is derived from: a
// left-to-right edge across a unit cell whose dimple bulges towards negative y.
func StandardEdge() Edge {
	return Edge{
		CurveOf(0.2, 0.1, 0.42, 0.07, 0.42, 0),
		CurveOf(0, -0.07, -0.14, -0.15, 0.08, -0.15),
		CurveOf(0.22, 0, 0.07, 0.08, 0.07, 0.15),
		CurveOf(0, 0.075, 0.2, -0.1, 0.43, 0),
	}
}

// RotateEdge90 turns the edge a quarter turn clockwise (y-down), mapping a
// left-to-right edge to a top-to-bottom one.
func RotateEdge90(e Edge) Edge {
	return e.Transform(curve.Rotate90)
}

// FlipEdge negates every component of the edge: the same curve traced from
// the opposite corner of the cell.
func FlipEdge(e Edge) Edge {
	return e.Transform(curve.Negate)
}

// RotateCurveStart switches the curve handle before the dimple between
// vertical and horizontal orientation.
func RotateCurveStart(e Edge) Edge {
	mustBeCurved(e)
	c1, c2 := rotateCurvePortion(e[0], e[1], -1)
	return Edge{c1, c2, e[2], e[3]}
}

// RotateCurveEnd switches the curve handle after the dimple between vertical
// and horizontal orientation.
func RotateCurveEnd(e Edge) Edge {
	mustBeCurved(e)
	c3, c4 := rotateCurvePortion(e[2], e[3], 1)
	return Edge{e[0], e[1], c3, c4}
}

// rotateCurvePortion moves the handle length between the incoming tangent of
// c1's end and the outgoing tangent of c2's start. direction is -1 when
// rotating the start of the dimple and +1 for its end.
func rotateCurvePortion(c1, c2 Segment, direction float64) (Segment, Segment) {
	length1 := c1.To.Y - c1.C2.Y
	length2 := c2.C1.Y
	c1.C2 = curve.Vec(roundPrecise(c1.C2.X-direction*length1), c1.To.Y)
	c2.C1 = curve.Vec(direction*length2, 0)
	return c1, c2
}

// FlipDimple mirrors the dimple to the other side of the edge by negating all
// y components, except those anchoring the edge's ends: the first control
// point of the first segment and the second control point and end point of
// the last one.
func FlipDimple(e Edge) Edge {
	mustBeCurved(e)
	neg := func(v curve.Vec2) curve.Vec2 { return curve.Vec(v.X, -v.Y) }
	out := make(Edge, 4)
	for i, s := range e {
		if i != 0 {
			s.C1 = neg(s.C1)
		}
		if i != 3 {
			s.C2 = neg(s.C2)
			s.To = neg(s.To)
		}
		out[i] = s
	}
	return out
}

// MoveKeyPoints shifts the three key points of the dimple: the point where
// the dimple starts by p1, its tip by p2 and the point where it ends by p1+d3.
// Every offset is undone by the following segment, so the edge stays
// continuous and keeps its end point. The results are rounded to 5
// significant digits.
func MoveKeyPoints(e Edge, p1, p2, d3 curve.Vec2) Edge {
	mustBeCurved(e)
	x1, y1 := p1.Splat()
	x2, y2 := p2.Splat()
	x3 := x1 + d3.X
	y3 := y1 + d3.Y

	shift := func(s Segment, c2x, c2y, tox, toy float64) Segment {
		s.C2 = curve.Vec(s.C2.X+c2x, s.C2.Y+c2y)
		s.To = curve.Vec(s.To.X+tox, s.To.Y+toy)
		return s.Map(roundPrecise)
	}
	return Edge{
		shift(e[0], x1, y1, x1, y1),
		// The tip's handle takes over p2 exactly only vertically.
		shift(e[1], x2, -y1+y2, -x1+x2, -y1+y2),
		shift(e[2], -x2+x3, -y2+y3, -x2+x3, -y2+y3),
		shift(e[3], -x3, -y3, -x3, -y3),
	}
}

// newEdge builds a randomized edge from the template. It consumes exactly nine
// values from r, in a fixed order.
func newEdge(r *Random) Edge {
	e := StandardEdge()
	if r.coin() {
		e = RotateCurveStart(e)
	}
	if r.coin() {
		e = RotateCurveEnd(e)
	}
	if r.coin() {
		e = FlipDimple(e)
	}
	p1 := r.inDisk(dimpleJitter)
	p2 := r.inDisk(dimpleJitter)
	d3 := r.inDisk(neckJitter)
	return MoveKeyPoints(e, p1, p2, d3)
}

func mustBeCurved(e Edge) {
	if !e.isCurved() {
		panic("jigsaw: edge template transforms need four cubic segments")
	}
}
