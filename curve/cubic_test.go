package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezExtrema(t *testing.T) {
	// A symmetric arch. x has its extrema at the end points, y at t=0.5.
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(0.0, 1.0),
		Pt(1.0, 1.0),
		Pt(1.0, 0.0),
	}
	ts, n := c.Extrema()
	diff(t, []float64{0.5}, ts[:n], cmpopts.EquateApprox(0, 1e-9))

	diff(t, Rect{0, 0, 1, 0.75}, c.BoundingBox(), cmpopts.EquateApprox(0, 1e-9))
}

func TestCubicBezFlatten(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(30, 100), Pt(70, -100), Pt(100, 0)}
	const tolerance = 0.1
	var pts []Point
	for pt := range c.Flatten(tolerance) {
		pts = append(pts, pt)
	}
	if len(pts) < 2 {
		t.Fatalf("got %d points, want more", len(pts))
	}
	if last := pts[len(pts)-1]; last != c.P3 {
		t.Errorf("got last point %v, want %v", last, c.P3)
	}
	// Every chord midpoint stays close to the curve.
	prev := c.P0
	n := len(pts)
	for i, pt := range pts {
		mid := Pt((prev.X+pt.X)/2, (prev.Y+pt.Y)/2)
		on := c.Eval((float64(i) + 0.5) / float64(n))
		if d := mid.Sub(on).Hypot(); d > 4*tolerance {
			t.Errorf("chord %d is %g away from the curve", i, d)
		}
		prev = pt
	}
}

func TestSolveQuadratic(t *testing.T) {
	roots, n := SolveQuadratic(-2, 0, 2)
	got := roots[:n]
	if n != 2 || math.Abs(math.Abs(got[0])-1) > 1e-12 || math.Abs(math.Abs(got[1])-1) > 1e-12 {
		t.Errorf("got roots %v, want ±1", got)
	}
	roots, n = SolveQuadratic(3, -1, 0)
	diff(t, []float64{3}, roots[:n])
}
