package curve

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is an element of a Bézier path. A valid path has a MoveTo at the
// beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment is a self-contained portion of a path with an explicit start
// point. It is a tagged union of [Line] and [CubicBez].
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

// Flatten yields the points of a polyline approximating the segment, without
// its start point.
func (seg PathSegment) Flatten(tolerance float64) iter.Seq[Point] {
	if seg.Kind == LineKind {
		return func(yield func(Point) bool) { yield(seg.P1) }
	}
	return seg.Cubic().Flatten(tolerance)
}

// BezPath is a Bézier path stored as a slice of path elements.
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to the
// path.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments. A ClosePath whose
// subpath doesn't already end at its start point yields the closing line.
func (p BezPath) Segments() iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind, CubicToKind:
				seg := segmentFrom(last, el)
				last, _ = el.EndPoint()
				if !yield(seg) {
					return
				}
			case ClosePathKind:
				if last != start {
					seg := PathSegment{Kind: LineKind, P0: last, P1: start}
					last = start
					if !yield(seg) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// SVG converts the path to an SVG path string in absolute coordinates.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// BoundingBox returns the tight bounding box of the path, taking the extrema of
// curve segments into account.
func (p BezPath) BoundingBox() Rect {
	var bbox Rect
	first := true
	for seg := range p.Segments() {
		if first {
			bbox = seg.BoundingBox()
			first = false
		} else {
			bbox = bbox.Union(seg.BoundingBox())
		}
	}
	return bbox
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [BezPath.BoundingBox], this uses control points directly rather than computing
// tight bounds for curve elements.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}
	return cbox
}

// Winding returns the nonzero winding number of pt with respect to the path.
// Curves are flattened to within tolerance first. Every subpath is treated as
// closed.
func (p BezPath) Winding(pt Point, tolerance float64) int {
	winding := 0
	var start, last Point
	open := false
	closeSubpath := func() {
		if open && last != start {
			winding += Line{last, start}.crossing(pt)
		}
		open = false
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			closeSubpath()
			start, last = el.P0, el.P0
			open = true
		case ClosePathKind:
			closeSubpath()
			last = start
		case LineToKind, CubicToKind:
			for q := range segmentFrom(last, el).Flatten(tolerance) {
				winding += Line{last, q}.crossing(pt)
				last = q
			}
			open = true
		}
	}
	closeSubpath()
	return winding
}

// segmentFrom returns the segment drawn by el when the pen is at last.
func segmentFrom(last Point, el PathElement) PathSegment {
	if el.Kind == CubicToKind {
		return PathSegment{Kind: CubicKind, P0: last, P1: el.P0, P2: el.P1, P3: el.P2}
	}
	return PathSegment{Kind: LineKind, P0: last, P1: el.P0}
}
