package pythagoras

import "testing"

func TestDefaultRampSize(t *testing.T) {
	r := DefaultRamp()
	if r.Size() != DefaultRampSize {
		t.Errorf("Size = %d, want %d", r.Size(), DefaultRampSize)
	}
}

func TestRampEndpointsMatchStops(t *testing.T) {
	r, err := NewRamp([]string{"#000000", "#ffffff"}, 256, "#ff0000")
	if err != nil {
		t.Fatal(err)
	}

	first := r.lookup(0)
	if !approxEqual(first.R, 0) || !approxEqual(first.G, 0) || !approxEqual(first.B, 0) {
		t.Errorf("lookup(0) = %+v, want black", first)
	}
	last := r.lookup(1)
	if !approxEqual(last.R, 1) || !approxEqual(last.G, 1) || !approxEqual(last.B, 1) {
		t.Errorf("lookup(1) = %+v, want white", last)
	}
}

func TestRampBoundaryNeverExceedsBounds(t *testing.T) {
	r := DefaultRamp()

	// level == depthLimit floor-truncates to exactly Size; the index clamps
	// to the top entry instead of indexing out of range or falling back.
	for limit := 1; limit <= DefaultMaxDepth; limit++ {
		got := r.At(limit, limit)
		if got == r.Fallback() {
			t.Fatalf("At(%d, %d) hit the fallback, want top ramp entry", limit, limit)
		}
		if got != r.colors[r.Size()-1] {
			t.Fatalf("At(%d, %d) = %+v, want top ramp entry %+v", limit, limit, got, r.colors[r.Size()-1])
		}
	}
}

func TestRampZeroDepthLimitFallsBack(t *testing.T) {
	// 0/0 normalizes to NaN; the fallback covers it.
	r := DefaultRamp()
	if got := r.At(0, 0); got != r.Fallback() {
		t.Errorf("At(0, 0) = %+v, want fallback", got)
	}
}

func TestRampOutOfRangeFallsBack(t *testing.T) {
	r := DefaultRamp()
	for _, v := range []float64{-0.01, 1.01, 5} {
		if got := r.lookup(v); got != r.Fallback() {
			t.Errorf("lookup(%v) = %+v, want fallback", v, got)
		}
	}
}

func TestRampDistinctLevels(t *testing.T) {
	r := DefaultRamp()
	const limit = 11
	seen := make(map[Color]bool)
	for level := 0; level <= limit; level++ {
		seen[r.At(level, limit)] = true
	}
	// Every level of a depth-11 tree gets its own color on a 256-entry ramp.
	if len(seen) != limit+1 {
		t.Errorf("got %d distinct colors for %d levels", len(seen), limit+1)
	}
}

func TestNewRampValidation(t *testing.T) {
	if _, err := NewRamp([]string{"#000000"}, 256, "#000000"); err == nil {
		t.Error("single stop should be rejected")
	}
	if _, err := NewRamp([]string{"#000000", "#ffffff"}, 1, "#000000"); err == nil {
		t.Error("size 1 should be rejected")
	}
	if _, err := NewRamp([]string{"#000000", "not-a-color"}, 256, "#000000"); err == nil {
		t.Error("malformed stop should be rejected")
	}
	if _, err := NewRamp([]string{"#000000", "#ffffff"}, 256, "nope"); err == nil {
		t.Error("malformed fallback should be rejected")
	}
}

func TestRampAlphaIsOpaque(t *testing.T) {
	r := DefaultRamp()
	for i, c := range r.colors {
		if c.A != 1 {
			t.Fatalf("ramp entry %d has alpha %v, want 1", i, c.A)
		}
	}
}
