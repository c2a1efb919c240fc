package curve

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// crossing returns the winding contribution of the line for a ray cast from pt
// towards negative x.
func (l Line) crossing(pt Point) int {
	a, b := l.P0, l.P1
	switch {
	case a.Y <= pt.Y && b.Y > pt.Y:
		// downwards
		if pt.X > a.X+(pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) {
			return -1
		}
	case b.Y <= pt.Y && a.Y > pt.Y:
		// upwards
		if pt.X > a.X+(pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) {
			return 1
		}
	}
	return 0
}
