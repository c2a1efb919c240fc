package curve

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Rotate90 is an exact quarter turn taking ⟨x, y⟩ to ⟨-y, x⟩. In a y-down
// coordinate system this is clockwise: a left-to-right edge becomes a
// top-to-bottom edge.
var Rotate90 = Affine{0, 1, -1, 0, 0, 0}

// Negate is the point reflection through the origin, an exact half turn.
var Negate = Affine{-1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}
