package tess

// Board owns the shapes that have been committed to the tessellation.
// Shapes are appended in placement order and removed most-recent-first
// by Undo. The board is the single owner of its shapes; a placed shape
// must not be mutated by the caller afterwards.
//
// Board is not safe for concurrent use.
type Board struct {
	shapes []*Shape
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place commits a shape to the board. Nil shapes are ignored.
func (b *Board) Place(s *Shape) {
	if s == nil {
		return
	}
	b.shapes = append(b.shapes, s)
	Logger().Debug("shape placed",
		"centroid", s.Centroid(), "vertices", s.Len(), "total", len(b.shapes))
}

// PlaceSnapped aligns s to the nearest placed shape when a snap pair
// within threshold exists, then places it. Returns whether a snap was
// applied.
func (b *Board) PlaceSnapped(s *Shape, threshold float64) bool {
	pair, ok := b.BestSnap(s, threshold)
	if ok {
		Snap(s, pair)
	}
	b.Place(s)
	return ok
}

// Undo removes and returns the most recently placed shape.
// Returns false if the board is empty.
func (b *Board) Undo() (*Shape, bool) {
	if len(b.shapes) == 0 {
		return nil, false
	}
	last := b.shapes[len(b.shapes)-1]
	b.shapes[len(b.shapes)-1] = nil
	b.shapes = b.shapes[:len(b.shapes)-1]
	Logger().Debug("shape removed", "total", len(b.shapes))
	return last, true
}

// Len returns the number of placed shapes.
func (b *Board) Len() int {
	return len(b.shapes)
}

// Shapes returns the placed shapes in placement order.
// The returned slice is a copy; the shapes themselves are shared.
func (b *Board) Shapes() []*Shape {
	out := make([]*Shape, len(b.shapes))
	copy(out, b.shapes)
	return out
}

// Nearest returns the placed shape whose centroid is closest to p, or
// nil if the board is empty. Ties keep the earliest-placed shape.
func (b *Board) Nearest(p Point) *Shape {
	var nearest *Shape
	bestSq := 0.0
	for _, s := range b.shapes {
		dSq := p.Sub(s.Centroid()).LengthSquared()
		if nearest == nil || dSq < bestSq {
			nearest = s
			bestSq = dSq
		}
	}
	return nearest
}

// BestSnap finds the minimum-distance snap pair between s and the
// placed shape nearest to s's centroid. Returns false if the board is
// empty or no pair is within threshold.
func (b *Board) BestSnap(s *Shape, threshold float64) (SnapPair, bool) {
	if s == nil {
		return SnapPair{}, false
	}
	nearest := b.Nearest(s.Centroid())
	if nearest == nil {
		return SnapPair{}, false
	}
	return BestSnapPair(FindSnapPairs(s, nearest, threshold))
}
