package pythagoras

// PointerShape maps a pointer position in drawing-surface coordinates to
// shape parameters. The vertical axis drives HeightFactor into roughly
// [0, 0.8], inverted (top of the surface gives the tallest triangles); the
// horizontal axis drives Lean into [-0.5, 0.5], inverted (pointer at the
// left edge leans the apex right).
//
// Off-surface positions are clamped into bounds before mapping. Malformed
// bounds (non-positive width or height) are rejected: ok is false and the
// returned params are the zero value.
func PointerShape(x, y int, boundsW, boundsH float64) (params ShapeParams, ok bool) {
	if boundsW <= 0 || boundsH <= 0 {
		return ShapeParams{}, false
	}

	fx := clamp(float64(x), 0, boundsW)
	fy := clamp(float64(y), 0, boundsH)

	return ShapeParams{
		HeightFactor: (fy*-0.8)/boundsH + 0.8,
		Lean:         (fx*-1.0)/boundsW + 0.5,
	}, true
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
