package pythagoras

import "time"

// Model is the process-wide state of the fractal: the current shape
// parameters, the growth state, the calculation cache, and the active tree.
//
// All state transitions (pointer moved, growth tick fired) run to completion
// before the next event is processed. The cache persists and only the cache
// persists across rebuilds; the tree is discarded wholesale on every shape
// or depth change, with no incremental diffing.
//
// Not safe for concurrent use.
type Model struct {
	params  ShapeParams
	grower  *Grower
	builder *Builder
	tree    *Tree
	built   bool

	rebuilds uint64
}

// NewModel creates a Model from the given configuration. The depth limit
// starts at 0, the cache is empty, and no tree exists until the first
// pointer move or growth tick.
func NewModel(cfg Config) *Model {
	cache := NewCalcCache(cfg.CacheCapacity)
	return &Model{
		grower: NewGrower(cfg.GrowInterval(), cfg.MaxDepth),
		builder: NewBuilder(
			float64(cfg.SurfaceWidth),
			float64(cfg.SurfaceHeight),
			cfg.BaseWidth,
			cache,
		),
		tree: &Tree{},
	}
}

// PointerMove replaces the shape parameters from a pointer position and
// rebuilds the tree at the current depth limit. The growth schedule is
// unaffected. Returns false (leaving all state untouched) when the builder's
// surface bounds are malformed.
func (m *Model) PointerMove(x, y int) bool {
	params, ok := PointerShape(x, y, m.builder.SurfaceWidth, m.builder.SurfaceHeight)
	if !ok {
		return false
	}
	m.params = params
	m.rebuild()
	return true
}

// Advance feeds elapsed time to the growth scheduler and rebuilds the tree
// when the depth limit grows. Returns true when a growth tick fired.
func (m *Model) Advance(dt time.Duration) bool {
	if !m.grower.Advance(dt) {
		return false
	}
	m.rebuild()
	return true
}

// rebuild discards the current tree and constructs a fresh one from the
// current parameters and depth limit.
func (m *Model) rebuild() {
	m.builder.Build(m.tree, m.params, m.grower.Depth())
	m.built = true
	m.rebuilds++
}

// Tree returns the active tree, or nil before the first build.
func (m *Model) Tree() *Tree {
	if !m.built {
		return nil
	}
	return m.tree
}

// Params returns the current shape parameters.
func (m *Model) Params() ShapeParams {
	return m.params
}

// DepthLimit returns the current depth limit.
func (m *Model) DepthLimit() int {
	return m.grower.Depth()
}

// GrowthDone reports whether the maximum depth has been reached.
func (m *Model) GrowthDone() bool {
	return m.grower.Done()
}

// Rebuilds returns the number of tree rebuilds since creation.
func (m *Model) Rebuilds() uint64 {
	return m.rebuilds
}

// CacheStats returns the calculation cache's effectiveness counters.
func (m *Model) CacheStats() CalcStats {
	return m.builder.Cache().Stats()
}

// SurfaceSize returns the drawing surface dimensions.
func (m *Model) SurfaceSize() (w, h float64) {
	return m.builder.SurfaceWidth, m.builder.SurfaceHeight
}
