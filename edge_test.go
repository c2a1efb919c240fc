package jigsaw

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/jigsaw/curve"
)

// Curve handles in vertical orientation on both sides of the dimple.
var edgeVerticalVertical = Edge{
	CurveOf(0.2, 0.1, 0.4, 0.075, 0.4, 0),
	CurveOf(0, -0.075, -0.1, -0.15, 0.1, -0.15),
	CurveOf(0.2, 0, 0.1, 0.075, 0.1, 0.15),
	CurveOf(0, 0.075, 0.2, -0.1, 0.4, 0),
}

// Curve handles in horizontal orientation on both sides of the dimple.
var edgeHorizontalHorizontal = Edge{
	CurveOf(0.2, 0.1, 0.325, 0, 0.4, 0),
	CurveOf(0.075, 0, -0.1, -0.15, 0.1, -0.15),
	CurveOf(0.2, 0, 0.025, 0.15, 0.1, 0.15),
	CurveOf(0.075, 0, 0.2, -0.1, 0.4, 0),
}

func TestRotateCurveStart(t *testing.T) {
	vv, hh := edgeVerticalVertical, edgeHorizontalHorizontal
	diff(t, Edge{hh[0], hh[1], vv[2], vv[3]}, RotateCurveStart(vv))
}

func TestRotateCurveEnd(t *testing.T) {
	vv, hh := edgeVerticalVertical, edgeHorizontalHorizontal
	diff(t, Edge{vv[0], vv[1], hh[2], hh[3]}, RotateCurveEnd(vv))
}

func TestRotateCurveDoesNotModifyInput(t *testing.T) {
	e := StandardEdge()
	RotateCurveStart(e)
	RotateCurveEnd(e)
	FlipDimple(e)
	MoveKeyPoints(e, curve.Vec(0.01, 0.01), curve.Vec(0.01, 0.01), curve.Vec(0.01, 0.01))
	diff(t, StandardEdge(), e)
}

func TestStandardEdgeDelta(t *testing.T) {
	diff(t, curve.Vec(1, 0), StandardEdge().Delta(), cmpopts.EquateApprox(0, 1e-12))
}

func TestRotateEdge90(t *testing.T) {
	e := StandardEdge()
	diff(t, curve.Vec(0, 1), RotateEdge90(e).Delta(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, curve.Vec(-1, 0), RotateEdge90(RotateEdge90(e)).Delta(), cmpopts.EquateApprox(0, 1e-12))

	// Quarter turns are exact, four of them are the identity.
	diff(t, e, RotateEdge90(RotateEdge90(RotateEdge90(RotateEdge90(e)))))
	diff(t, RotateEdge90(RotateEdge90(e)), FlipEdge(e))
}

func TestFlipDimple(t *testing.T) {
	e := StandardEdge()
	flipped := FlipDimple(e)
	diff(t, e, FlipDimple(flipped))
	diff(t, e.Delta(), flipped.Delta(), cmpopts.EquateApprox(0, 1e-12))

	// The tip of the dimple moves to the other side of the edge.
	tip := e[0].To.Add(e[1].To)
	flippedTip := flipped[0].To.Add(flipped[1].To)
	diff(t, curve.Vec(tip.X, -tip.Y), flippedTip)

	// The anchors at both ends of the edge keep their direction.
	diff(t, e[0].C1, flipped[0].C1)
	diff(t, e[3].C2, flipped[3].C2)
	diff(t, e[3].To, flipped[3].To)
}

func TestMoveKeyPoints(t *testing.T) {
	e := StandardEdge()
	diff(t, e, MoveKeyPoints(e, curve.Vec2{}, curve.Vec2{}, curve.Vec2{}))

	p1 := curve.Vec(0.01, -0.02)
	p2 := curve.Vec(0.03, 0.01)
	d3 := curve.Vec(0.005, -0.002)
	moved := MoveKeyPoints(e, p1, p2, d3)
	opt := cmpopts.EquateApprox(0, 1e-9)

	diff(t, e.Delta(), moved.Delta(), opt)
	// Start of the dimple, its tip and its end.
	diff(t, e[0].To.Add(p1), moved[0].To, opt)
	diff(t, e[0].To.Add(e[1].To).Add(p2), moved[0].To.Add(moved[1].To), opt)
	diff(t, e.Delta().Sub(e[3].To).Add(p1).Add(d3), moved.Delta().Sub(moved[3].To), opt)
	// The tip's incoming handle follows p2 in y, and p1+p2 in x.
	handle := func(e Edge) curve.Vec2 { return e[0].To.Add(e[1].C2) }
	diff(t, handle(e).Add(curve.Vec(p1.X+p2.X, p2.Y)), handle(moved), opt)
}

func TestNewEdgeConsumesNineValues(t *testing.T) {
	r1 := NewRandom("nine")
	newEdge(r1)
	r2 := NewRandom("nine")
	for range 9 {
		r2.Float64()
	}
	if a, b := r1.Float64(), r2.Float64(); a != b {
		t.Errorf("streams diverged after one edge: %v != %v", a, b)
	}
}

func TestNewEdgeCloses(t *testing.T) {
	r := NewRandom("closure")
	for i := range 1000 {
		e := newEdge(r)
		if !e.isCurved() {
			t.Fatalf("edge %d: got %d segments, want 4 cubics", i, len(e))
		}
		if d := e.Delta().Sub(curve.Vec(1, 0)).Hypot(); d > 1e-4 {
			t.Errorf("edge %d: end point is %g away from (1, 0)", i, d)
		}
	}
}

func TestInDisk(t *testing.T) {
	r := NewRandom("disk")
	for range 1000 {
		// Rounding to 5 significant digits may push points by a hair.
		if v := r.inDisk(dimpleJitter); v.Hypot() > dimpleJitter*(1+1e-4) {
			t.Errorf("%s lies outside the disk of radius %g", v, dimpleJitter)
		}
	}
}

func TestRoundPrecise(t *testing.T) {
	f := func(in, want float64) {
		t.Helper()
		if got := roundPrecise(in); got != want {
			t.Errorf("roundPrecise(%v) = %v, want %v", in, got, want)
		}
	}
	f(0.4-0.075, 0.325)
	f(0.123456789, 0.12346)
	f(-0.000123456, -0.00012346)
	f(12345.678, 12346)
	f(0, 0)
}
