package pythagoras

import (
	"testing"
	"time"
)

func TestModelStartsEmpty(t *testing.T) {
	m := NewModel(DefaultConfig())

	if m.Tree() != nil {
		t.Error("Tree should be nil before the first build")
	}
	if m.DepthLimit() != 0 {
		t.Errorf("DepthLimit = %d, want 0", m.DepthLimit())
	}
	if m.Params() != (ShapeParams{}) {
		t.Errorf("Params = %+v, want zero", m.Params())
	}
	if stats := m.CacheStats(); stats.Hits+stats.Misses != 0 {
		t.Error("cache should start untouched")
	}
}

func TestModelPointerMoveRebuilds(t *testing.T) {
	m := NewModel(DefaultConfig())

	if !m.PointerMove(600, 150) {
		t.Fatal("pointer move rejected")
	}

	tree := m.Tree()
	if tree == nil {
		t.Fatal("pointer move should build a tree")
	}
	// Depth limit is still 0: a single root node.
	if tree.Len() != 1 {
		t.Errorf("Len = %d, want 1 at depth limit 0", tree.Len())
	}
	if m.DepthLimit() != 0 {
		t.Error("pointer move must not affect the growth schedule")
	}

	// Parameters replaced wholesale from the mapping.
	want, _ := PointerShape(600, 150, DefaultSurfaceWidth, DefaultSurfaceHeight)
	if m.Params() != want {
		t.Errorf("Params = %+v, want %+v", m.Params(), want)
	}
}

func TestModelGrowthRebuilds(t *testing.T) {
	m := NewModel(DefaultConfig())
	m.PointerMove(600, 150)

	if !m.Advance(DefaultGrowInterval) {
		t.Fatal("expected a growth tick")
	}
	if m.DepthLimit() != 1 {
		t.Errorf("DepthLimit = %d, want 1", m.DepthLimit())
	}
	if m.Tree().Len() != 3 {
		t.Errorf("Len = %d, want 3 after first growth", m.Tree().Len())
	}
}

func TestModelGrowthToMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 4
	m := NewModel(cfg)
	m.PointerMove(600, 300)

	for i := 0; i < 50; i++ {
		m.Advance(cfg.GrowInterval())
	}

	if m.DepthLimit() != 4 {
		t.Errorf("DepthLimit = %d, want 4", m.DepthLimit())
	}
	if !m.GrowthDone() {
		t.Error("growth should be done at max depth")
	}

	// Once done, advancing never rebuilds again.
	rebuilds := m.Rebuilds()
	m.Advance(time.Minute)
	if m.Rebuilds() != rebuilds {
		t.Error("advance after max depth triggered a rebuild")
	}
}

func TestModelCachePersistsAcrossRebuilds(t *testing.T) {
	m := NewModel(DefaultConfig())
	m.PointerMove(600, 150)
	m.Advance(DefaultGrowInterval)
	m.Advance(DefaultGrowInterval)

	misses := m.CacheStats().Misses

	// Re-sending the same pointer position rebuilds with identical rounded
	// parameters: the cache serves every node.
	m.PointerMove(600, 150)
	if got := m.CacheStats().Misses; got != misses {
		t.Errorf("identical rebuild added %d cache misses", got-misses)
	}
}

func TestModelRejectsMalformedBounds(t *testing.T) {
	cfg := DefaultConfig()
	m := NewModel(cfg)
	m.builder.SurfaceWidth = 0 // simulate a broken collaborator

	if m.PointerMove(10, 10) {
		t.Error("pointer move with malformed bounds should be rejected")
	}
	if m.Tree() != nil {
		t.Error("rejected move must not build a tree")
	}
}

func TestModelDepthNeverExceedsLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 6
	m := NewModel(cfg)
	m.PointerMove(240, 60)

	for i := 0; i < 12; i++ {
		m.Advance(cfg.GrowInterval())
		limit := m.DepthLimit()
		m.Tree().Walk(func(idx int32) {
			if n := m.Tree().Node(idx); n.Level > limit {
				t.Fatalf("node level %d exceeds depth limit %d", n.Level, limit)
			}
		})
	}
}

func TestModelRebuildCount(t *testing.T) {
	m := NewModel(DefaultConfig())

	m.PointerMove(100, 100)
	m.PointerMove(101, 100)
	m.Advance(DefaultGrowInterval)

	if m.Rebuilds() != 3 {
		t.Errorf("Rebuilds = %d, want 3", m.Rebuilds())
	}
}

func TestModelSurfaceSize(t *testing.T) {
	m := NewModel(DefaultConfig())
	w, h := m.SurfaceSize()
	if w != DefaultSurfaceWidth || h != DefaultSurfaceHeight {
		t.Errorf("SurfaceSize = (%v, %v), want (%v, %v)",
			w, h, DefaultSurfaceWidth, DefaultSurfaceHeight)
	}
}
