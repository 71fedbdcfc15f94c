package pythagoras

import "math"

// CalcResult holds the geometry of one branching step: the edge lengths of
// the two child squares and the right triangle's two base angles.
// Derived purely from (width, heightFactor, lean); immutable once computed.
type CalcResult struct {
	NextLeft   float64 // left child edge length
	NextRight  float64 // right child edge length
	AngleLeft  float64 // left rotation amount, degrees
	AngleRight float64 // right rotation amount, degrees
}

const radToDeg = 180 / math.Pi

// Solve computes the two child squares spawned by a square of the given
// width. The branching triangle sits on the square's top edge: its height is
// heightFactor*width and its apex is shifted horizontally by lean. The two
// hypotenuses become the child edge lengths and the two base angles become
// the child rotation amounts.
//
// Pure function with no error paths: all inputs are finite and width is
// non-negative by construction. The degenerate case lean = ±0.5 collapses
// one horizontal offset to zero and yields a 90° angle, which is valid.
func Solve(width, heightFactor, lean float64) CalcResult {
	trigH := heightFactor * width
	trigLeft := width * (0.5 - lean)
	trigRight := width * (0.5 + lean)

	return CalcResult{
		NextLeft:   math.Hypot(trigH, trigLeft),
		NextRight:  math.Hypot(trigH, trigRight),
		AngleLeft:  math.Atan2(trigH, trigLeft) * radToDeg,
		AngleRight: math.Atan2(trigH, trigRight) * radToDeg,
	}
}
