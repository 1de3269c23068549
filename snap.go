package tess

// SnapThreshold is the default maximum distance, in world units, at
// which two snap points are considered close enough to align.
const SnapThreshold = 5.0

// SnapPair is a candidate alignment between a snap point on the shape
// being placed (From) and a snap point on an existing shape (To).
type SnapPair struct {
	From, To Point
	Distance float64
}

// FindSnapPairs returns every pair of snap points between a and b whose
// distance is strictly below threshold, with the measured distance.
// The scan is a brute-force product of the two snap-point lists; each
// list holds 2 x vertex count points, so the work is a small constant.
// Returns nil if either shape is nil or nothing qualifies.
func FindSnapPairs(a, b *Shape, threshold float64) []SnapPair {
	if a == nil || b == nil {
		return nil
	}

	from := a.SnapPoints()
	to := b.SnapPoints()

	var pairs []SnapPair
	for _, pa := range from {
		for _, pb := range to {
			d := pa.Distance(pb)
			if d < threshold {
				pairs = append(pairs, SnapPair{From: pa, To: pb, Distance: d})
			}
		}
	}
	return pairs
}

// BestSnapPair returns the pair with the smallest distance, and false
// if pairs is empty.
func BestSnapPair(pairs []SnapPair) (SnapPair, bool) {
	if len(pairs) == 0 {
		return SnapPair{}, false
	}
	best := pairs[0]
	for _, p := range pairs[1:] {
		if p.Distance < best.Distance {
			best = p
		}
	}
	return best, true
}

// Snap translates s so that the pair's From point lands exactly on its
// To point, preserving the shape's rotation.
func Snap(s *Shape, pair SnapPair) {
	if s == nil {
		return
	}
	s.MoveTo(s.Centroid().Add(pair.To.Sub(pair.From)))
	Logger().Debug("shape snapped",
		"from", pair.From, "to", pair.To, "distance", pair.Distance)
}
