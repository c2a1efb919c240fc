// Package curve provides the 2D geometry the jigsaw generator is built on:
// vectors and points, exact affine transforms, rectangles, cubic Béziers and
// Bézier paths.
//
// Edges of a puzzle piece are stored as relative deltas ([Vec2]), so the
// transforms that rotate, mirror and rescale them only use the linear part of
// an [Affine]. Absolute outlines, used for drawing, hit testing and bounding
// boxes, are [BezPath] values made of [MoveTo], [LineTo], [CubicTo] and
// [ClosePath] elements.
//
// # Exact transforms
//
// A rotation built from sine and cosine leaves tiny residues such as 6e-17
// where a quarter turn should produce zero. The generator needs
// bit-reproducible output, so quarter turns and point reflections use the
// exact matrices [Rotate90] and [Negate].
//
// # SVG
//
// [WriteSVG] and [SVG] turn a sequence of path elements into the contents of
// an SVG path's d attribute.
package curve
