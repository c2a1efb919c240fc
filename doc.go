// Package jigsaw cuts a rectangular board into interlocking jigsaw pieces.
//
// [Cutout] turns a [Config], the number of columns and rows plus a seed
// string, into a [PieceSet]: one closed outline per piece, each made of four
// edges of relative path segments. Outlines live in board-fraction space,
// where the whole board is the unit square, so they can be scaled to any
// texture. Equal configs always produce equal cutouts.
//
// # Edges
//
// Every curved edge is derived from [StandardEdge], a tab-and-blank curve
// across one cell. Random choices rotate the handles around the dimple
// ([RotateCurveStart], [RotateCurveEnd]), choose the side the dimple bulges
// to ([FlipDimple]) and jitter its key points ([MoveKeyPoints]). Two pieces
// sharing a border use the exact same edge data, and edges on the outside of
// the board are straight lines.
//
// # Output
//
// [PieceSet.WriteSVG] emits one SVG clip path per piece, usable with
// objectBoundingBox units on an image of the whole board.
// [PieceSet.WritePreview] draws the outlines for inspection, and a PieceSet
// marshals to JSON. [Piece.Path] returns the absolute outline on a board of a
// given size, for clipping textures and hit testing with [Piece.Contains].
//
// # Levels
//
// [GridFor] picks piece sizes and grid dimensions for a canvas and a desired
// number of pieces, and [Grid.Scatter] shuffles pieces across the texture.
package jigsaw
