package pythagoras

import (
	"image/color"
	"time"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is a plain white color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to an 8-bit color for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// WithAlpha returns the color with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	return Color{c.R, c.G, c.B, c.A * a}
}

// Branch identifies which side of its parent a square grew from.
type Branch uint8

const (
	BranchNone  Branch = iota // the root square
	BranchLeft                // left child, rotated counter-clockwise about its bottom-left corner
	BranchRight               // right child, rotated clockwise about its bottom-right corner
)

// ShapeParams is the pair of parameters controlling the fractal's aspect and
// tilt. Global to the current tree: replaced wholesale on every pointer move,
// immutable within a single build.
//
// HeightFactor scales the branching triangle's height relative to the base
// width (the pointer mapping produces roughly [0, 0.8]). Lean shifts the
// triangle's apex left or right in [-0.5, 0.5].
type ShapeParams struct {
	HeightFactor float64
	Lean         float64
}

// Default configuration values. These match the classic interactive
// Pythagoras tree demo: a 1200x600 surface with an 80px base square growing
// one level every half second up to depth 11.
const (
	DefaultSurfaceWidth  = 1200
	DefaultSurfaceHeight = 600
	DefaultBaseWidth     = 80.0
	DefaultMaxDepth      = 11
	DefaultGrowInterval  = 500 * time.Millisecond
	DefaultCacheCapacity = 4096
)
