package tess

import "math"

// DefaultSideLength is the edge length used by the editor's shape
// palette when no explicit size is given.
const DefaultSideLength = 30.0

// NewTriangle creates an equilateral triangle with the given side
// length, centered on center with one vertex pointing up.
func NewTriangle(center Point, side float64) *Shape {
	height := math.Sqrt(3) / 2 * side
	s, _ := NewShape([]Point{
		center.Add(Pt(0, -2.0/3.0*height)),
		center.Add(Pt(-side/2, height/3)),
		center.Add(Pt(side/2, height/3)),
	})
	return s
}

// NewSquare creates an axis-aligned square with the given side length,
// centered on center. Vertices run clockwise from the top left.
func NewSquare(center Point, side float64) *Shape {
	half := side / 2
	s, _ := NewShape([]Point{
		center.Add(Pt(-half, -half)),
		center.Add(Pt(half, -half)),
		center.Add(Pt(half, half)),
		center.Add(Pt(-half, half)),
	})
	return s
}

// NewHexagon creates a regular hexagon with the given side length,
// centered on center. The first vertex lies on the positive X axis.
func NewHexagon(center Point, side float64) *Shape {
	points := make([]Point, 6)
	for i := range points {
		a := math.Pi / 3 * float64(i)
		points[i] = center.Add(Pt(math.Cos(a)*side, math.Sin(a)*side))
	}
	s, _ := NewShape(points)
	return s
}

// NewIsoQuad creates the kite-shaped quadrilateral formed by two
// isosceles triangles (apex angle 30 degrees, legs of the given side
// length) joined at their base, centered on center.
func NewIsoQuad(center Point, side float64) *Shape {
	height := side * math.Sin(75*math.Pi/180)
	base := 2 * side * math.Cos(75*math.Pi/180)
	s, _ := NewShape([]Point{
		center.Add(Pt(-base/2, 0)),
		center.Add(Pt(0, -height)),
		center.Add(Pt(base/2, 0)),
		center.Add(Pt(0, height)),
	})
	return s
}
