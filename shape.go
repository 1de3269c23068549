package tess

import (
	"errors"
	"math"
)

// ErrInvalidGeometry is returned by NewShape when fewer than three
// points are supplied.
var ErrInvalidGeometry = errors.New("tess: polygon requires at least 3 points")

// coordDecimals is the number of decimal places every derived coordinate
// is rounded to. Rounding is half away from zero (math.Round) and keeps
// repeated rotate/move cycles from accumulating floating-point jitter
// that would be visible to equality-sensitive logic such as snapping.
const coordDecimals = 2

// Shape is a rigid polygon on the tessellation board. The base polygon
// is fixed at construction; MoveTo and Rotate adjust a rigid-body
// transform on top of it. Transformed vertices and the transformed
// centroid are cached and recomputed lazily on the first read after a
// mutation, so accessors never observe stale values.
//
// Shape is not safe for concurrent use.
type Shape struct {
	basePoints   []Point
	baseCentroid Point

	rotationDeg float64
	offset      Point

	fill    RGBA
	hasFill bool

	stale       bool
	transformed []Point
	centroid    Point
}

// NewShape creates a shape from an ordered list of vertices.
// The vertices must be in a consistent winding order (either direction)
// and describe a simple polygon. Returns ErrInvalidGeometry if fewer
// than three points are given.
func NewShape(points []Point) (*Shape, error) {
	if len(points) < 3 {
		return nil, ErrInvalidGeometry
	}

	base := make([]Point, len(points))
	copy(base, points)

	var sum Point
	for _, p := range base {
		sum = sum.Add(p)
	}

	return &Shape{
		basePoints:   base,
		baseCentroid: sum.Div(float64(len(base))),
		stale:        true,
		transformed:  make([]Point, len(base)),
	}, nil
}

// MoveTo moves the shape so that its centroid lands on target.
// The translation is absolute, not cumulative: calling MoveTo twice
// with the same target is the same as calling it once.
func (s *Shape) MoveTo(target Point) {
	s.offset = target.Sub(s.baseCentroid)
	s.stale = true
}

// Rotate adds deltaDegrees to the shape's rotation about its centroid.
// The accumulated angle wraps into the interval (-360, 360].
func (s *Shape) Rotate(deltaDegrees float64) {
	s.rotationDeg = wrapDegrees(s.rotationDeg + deltaDegrees)
	s.stale = true
}

// Rotation returns the accumulated rotation in degrees, in (-360, 360].
func (s *Shape) Rotation() float64 {
	return s.rotationDeg
}

// Centroid returns the transformed centroid of the shape.
func (s *Shape) Centroid() Point {
	s.recompute()
	return s.centroid
}

// Vertices returns the transformed vertices in their original order.
func (s *Shape) Vertices() []Point {
	s.recompute()
	out := make([]Point, len(s.transformed))
	copy(out, s.transformed)
	return out
}

// Len returns the number of vertices.
func (s *Shape) Len() int {
	return len(s.basePoints)
}

// SnapPoints returns the candidate alignment targets of the shape: the
// transformed vertices followed by the midpoint of each edge in edge
// order (edge i runs from vertex i to vertex i+1, wrapping last to
// first). The result always has exactly 2 x Len() points.
func (s *Shape) SnapPoints() []Point {
	s.recompute()
	n := len(s.transformed)
	pts := make([]Point, 0, 2*n)
	pts = append(pts, s.transformed...)
	for i := range s.transformed {
		pts = append(pts, s.transformed[i].Lerp(s.transformed[(i+1)%n], 0.5))
	}
	return pts
}

// Edges returns the outline of the shape as line segments, one per edge
// in edge order, wrapping last vertex to first.
func (s *Shape) Edges() []Edge {
	s.recompute()
	n := len(s.transformed)
	edges := make([]Edge, n)
	for i := range s.transformed {
		edges[i] = Edge{P0: s.transformed[i], P1: s.transformed[(i+1)%n]}
	}
	return edges
}

// ContainsPoint reports whether p lies inside the shape's transformed
// outline, using a ray-casting parity test: a horizontal ray cast from p
// crosses the boundary an odd number of times exactly when p is inside.
// The result is undefined (but never panics) for self-intersecting
// outlines.
func (s *Shape) ContainsPoint(p Point) bool {
	s.recompute()
	inside := false
	n := len(s.transformed)
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := s.transformed[i], s.transformed[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// SetFill sets the shape's fill color.
func (s *Shape) SetFill(c RGBA) {
	s.fill = c
	s.hasFill = true
}

// ClearFill removes the fill color, leaving the shape outline-only.
func (s *Shape) ClearFill() {
	s.fill = RGBA{}
	s.hasFill = false
}

// Fill returns the fill color and whether one is set.
func (s *Shape) Fill() (RGBA, bool) {
	return s.fill, s.hasFill
}

// recompute rebuilds the cached transformed vertices and centroid if a
// mutation has marked them stale: each base point is rotated about the
// base centroid and translated by the current offset, then rounded to
// coordDecimals places. The centroid only picks up the translation.
func (s *Shape) recompute() {
	if !s.stale {
		return
	}
	m := RotateAbout(s.rotationDeg*math.Pi/180, s.baseCentroid)
	for i, p := range s.basePoints {
		s.transformed[i] = m.TransformPoint(p).Add(s.offset).Round(coordDecimals)
	}
	s.centroid = s.baseCentroid.Add(s.offset).Round(coordDecimals)
	s.stale = false
}

// wrapDegrees wraps an angle into (-360, 360]. Positive multiples of
// 360 map to 360 (the closed end of the interval), negative multiples
// to 0.
func wrapDegrees(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w == 0 {
		if deg > 0 {
			return 360
		}
		return 0
	}
	return w
}

// Edge is a single outline segment between two transformed vertices.
type Edge struct {
	P0, P1 Point
}

// Midpoint returns the midpoint of the edge.
func (e Edge) Midpoint() Point {
	return e.P0.Lerp(e.P1, 0.5)
}
