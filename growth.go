package pythagoras

import "time"

// Grower advances the active depth limit by one every fixed interval until
// a maximum depth is reached. Growth is one-shot and monotonic: the depth
// never decreases and never resets without constructing a new Grower.
//
// The timer is chained, not fixed-rate: the next interval starts counting
// only after the tick (and the rebuild it triggers) completes. Advance
// therefore fires at most once per call and discards any overshoot, so a
// slow rebuild delays the next tick instead of overlapping it.
type Grower struct {
	interval time.Duration
	maxDepth int
	depth    int
	elapsed  time.Duration
}

// NewGrower creates a Grower starting at depth 0. Non-positive interval or
// maxDepth fall back to the defaults.
func NewGrower(interval time.Duration, maxDepth int) *Grower {
	if interval <= 0 {
		interval = DefaultGrowInterval
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Grower{interval: interval, maxDepth: maxDepth}
}

// Depth returns the current depth limit.
func (g *Grower) Depth() int {
	return g.depth
}

// MaxDepth returns the depth at which growth stops.
func (g *Grower) MaxDepth() int {
	return g.maxDepth
}

// Interval returns the growth interval.
func (g *Grower) Interval() time.Duration {
	return g.interval
}

// Done reports whether the maximum depth has been reached.
func (g *Grower) Done() bool {
	return g.depth >= g.maxDepth
}

// Advance accumulates elapsed time and reports whether the depth limit grew.
// At most one growth occurs per call; on firing the accumulator resets to
// zero rather than carrying the remainder, preserving the chained-timer
// semantics.
func (g *Grower) Advance(dt time.Duration) bool {
	if g.Done() {
		return false
	}
	g.elapsed += dt
	if g.elapsed < g.interval {
		return false
	}
	g.elapsed = 0
	g.depth++
	return true
}
