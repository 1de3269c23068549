package tess

import "testing"

func TestBoard_PlaceAndLen(t *testing.T) {
	b := NewBoard()
	if b.Len() != 0 {
		t.Fatalf("new board Len() = %d, want 0", b.Len())
	}

	b.Place(NewSquare(Pt(0, 0), 30))
	b.Place(NewTriangle(Pt(100, 0), 30))
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}

	b.Place(nil)
	if b.Len() != 2 {
		t.Errorf("Len() after Place(nil) = %d, want 2", b.Len())
	}
}

func TestBoard_UndoIsLIFO(t *testing.T) {
	b := NewBoard()
	first := NewSquare(Pt(0, 0), 30)
	second := NewTriangle(Pt(100, 0), 30)
	b.Place(first)
	b.Place(second)

	got, ok := b.Undo()
	if !ok || got != second {
		t.Errorf("first Undo() = %p, %v, want the last placed shape", got, ok)
	}
	got, ok = b.Undo()
	if !ok || got != first {
		t.Errorf("second Undo() = %p, %v, want the first placed shape", got, ok)
	}
	if _, ok := b.Undo(); ok {
		t.Error("Undo() on empty board = ok")
	}
}

func TestBoard_Shapes(t *testing.T) {
	b := NewBoard()
	s := NewSquare(Pt(0, 0), 30)
	b.Place(s)

	shapes := b.Shapes()
	if len(shapes) != 1 || shapes[0] != s {
		t.Fatalf("Shapes() = %v, want the placed shape", shapes)
	}

	// The returned slice is a copy; truncating it must not affect the board.
	shapes[0] = nil
	if got := b.Shapes(); got[0] != s {
		t.Error("mutating the returned slice changed the board")
	}
}

func TestBoard_Nearest(t *testing.T) {
	b := NewBoard()
	if b.Nearest(Pt(0, 0)) != nil {
		t.Error("Nearest() on empty board != nil")
	}

	near := NewSquare(Pt(10, 10), 30)
	far := NewSquare(Pt(500, 500), 30)
	b.Place(far)
	b.Place(near)

	if got := b.Nearest(Pt(0, 0)); got != near {
		t.Errorf("Nearest(origin) picked the wrong shape")
	}
	if got := b.Nearest(Pt(600, 600)); got != far {
		t.Errorf("Nearest(far corner) picked the wrong shape")
	}
}

func TestBoard_BestSnap(t *testing.T) {
	b := NewBoard()
	cur := NewSquare(Pt(28, 1), 30)

	if _, ok := b.BestSnap(cur, SnapThreshold); ok {
		t.Error("BestSnap() on empty board = ok")
	}
	if _, ok := b.BestSnap(nil, SnapThreshold); ok {
		t.Error("BestSnap(nil) = ok")
	}

	b.Place(NewSquare(Pt(500, 500), 30))
	b.Place(NewSquare(Pt(60, 0), 30)) // nearest to cur, edges ~2 apart

	pair, ok := b.BestSnap(cur, SnapThreshold)
	if !ok {
		t.Fatal("BestSnap() found nothing for nearly touching squares")
	}
	if pair.Distance >= SnapThreshold {
		t.Errorf("best pair distance = %v, want < %v", pair.Distance, SnapThreshold)
	}
}

func TestBoard_PlaceSnapped(t *testing.T) {
	b := NewBoard()
	b.Place(NewSquare(Pt(30, 0), 30))

	cur := NewSquare(Pt(1.5, 2.25), 30)
	snapped := b.PlaceSnapped(cur, SnapThreshold)
	if !snapped {
		t.Error("PlaceSnapped() did not snap a nearly fitting square")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	// The snapped square now shares its right edge with the placed one.
	if got := cur.Centroid(); !got.Approx(Pt(0, 0), 0.01) {
		t.Errorf("snapped centroid = %v, want (0, 0)", got)
	}
}

func TestBoard_PlaceSnappedOutOfRange(t *testing.T) {
	b := NewBoard()
	b.Place(NewSquare(Pt(500, 500), 30))

	cur := NewSquare(Pt(0, 0), 30)
	before := cur.Centroid()
	if snapped := b.PlaceSnapped(cur, SnapThreshold); snapped {
		t.Error("PlaceSnapped() snapped to a distant shape")
	}
	if got := cur.Centroid(); got != before {
		t.Errorf("centroid moved without a snap: %v -> %v", before, got)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}
