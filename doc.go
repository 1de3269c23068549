// Package tess provides the geometric core of a tessellation editor:
// rigid 2D polygon shapes that can be moved, rotated, and snapped to
// the vertices and edge midpoints of neighboring shapes.
//
// # Overview
//
// tess models each shape as an immutable base polygon plus a rigid-body
// transform (a rotation about the polygon's centroid and a translation).
// Transformed vertices are derived lazily: mutations only mark the shape
// dirty, and the first read after a mutation recomputes the cached
// outline. Every derived coordinate is rounded to two decimal places so
// that repeated rotate/move cycles never accumulate visible
// floating-point jitter.
//
// # Quick Start
//
//	import tess "github.com/bblodget/Tessellation"
//
//	board := tess.NewBoard()
//	board.Place(tess.NewSquare(tess.Pt(0, 0), tess.DefaultSideLength))
//
//	// A new square tracking the pointer.
//	cur := tess.NewSquare(tess.Pt(28, 1), tess.DefaultSideLength)
//	cur.Rotate(15)
//
//	// Snap it against the nearest placed shape before committing.
//	if pair, ok := board.BestSnap(cur, tess.SnapThreshold); ok {
//	    tess.Snap(cur, pair)
//	}
//	board.Place(cur)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Shape rotation angles are in degrees, positive clockwise on screen
//
// # Concurrency
//
// Shape and Board are single-owner types intended to be driven from one
// goroutine (typically a UI frame loop). Only the package logger is safe
// for concurrent use.
package tess

// Version is the current version of the library.
const Version = "0.1.0"
