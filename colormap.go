package pythagoras

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultRampSize is the number of discrete entries in a color ramp.
const DefaultRampSize = 256

// DefaultRampStops are the viridis control colors the default ramp
// interpolates between.
var DefaultRampStops = []string{
	"#440154", "#46327e", "#365c8d", "#277f8e",
	"#1fa187", "#4ac16d", "#a0da39", "#fde725",
}

// DefaultRampFallback is the color returned for out-of-range lookups.
const DefaultRampFallback = "#000000"

// Ramp is a fixed, precomputed palette mapping a normalized depth value to
// a color. The table is discretized once at construction; lookups are a
// floor-truncated index with a fallback for out-of-range input.
type Ramp struct {
	colors   []Color
	fallback Color
}

// NewRamp builds a ramp of size entries by interpolating the given hex
// control stops in Lab space, which keeps perceived brightness even across
// the ramp. At least two stops are required.
func NewRamp(stops []string, size int, fallback string) (*Ramp, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("ramp: need at least 2 stops, got %d", len(stops))
	}
	if size < 2 {
		return nil, fmt.Errorf("ramp: size %d too small", size)
	}

	parsed := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("ramp: stop %d: %w", i, err)
		}
		parsed[i] = c
	}

	fb, err := colorful.Hex(fallback)
	if err != nil {
		return nil, fmt.Errorf("ramp: fallback: %w", err)
	}

	colors := make([]Color, size)
	segments := len(parsed) - 1
	for i := range colors {
		t := float64(i) / float64(size-1)
		pos := t * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		frac := pos - float64(seg)
		c := parsed[seg].BlendLab(parsed[seg+1], frac).Clamped()
		colors[i] = Color{c.R, c.G, c.B, 1}
	}

	return &Ramp{
		colors:   colors,
		fallback: Color{fb.R, fb.G, fb.B, 1},
	}, nil
}

// DefaultRamp returns the viridis ramp with the default size and fallback.
func DefaultRamp() *Ramp {
	r, err := NewRamp(DefaultRampStops, DefaultRampSize, DefaultRampFallback)
	if err != nil {
		panic(fmt.Sprintf("pythagoras: default ramp: %v", err))
	}
	return r
}

// Size returns the number of entries in the ramp.
func (r *Ramp) Size() int {
	return len(r.colors)
}

// Fallback returns the out-of-range color.
func (r *Ramp) Fallback() Color {
	return r.fallback
}

// At returns the color for a node at the given level of a tree with the
// given depth limit. The normalized value level/depthLimit is
// floor-truncated into the table; the boundary level == depthLimit clamps
// to the top entry. A depth limit of 0 normalizes to NaN and yields the
// fallback.
func (r *Ramp) At(level, depthLimit int) Color {
	return r.lookup(float64(level) / float64(depthLimit))
}

// lookup maps a normalized value in [0, 1] to a ramp entry. Non-finite or
// out-of-range values return the fallback.
func (r *Ramp) lookup(t float64) Color {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return r.fallback
	}
	idx := int(math.Floor(t * float64(len(r.colors))))
	if idx >= len(r.colors) {
		idx = len(r.colors) - 1
	}
	return r.colors[idx]
}
