package pythagoras

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// whitePixel is a 1x1 white image scaled to draw solid color squares.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}

// DrawOp is a single drawable square: a world-space affine transform, the
// square's edge length, its depth level, and its ramp color. Ops are emitted
// in depth-first tree order, which is also a correct paint order (children
// stack above their parent).
type DrawOp struct {
	Transform [6]float64
	Size      float64
	Level     int
	Color     Color
}

// AppendOps flattens the tree into world-space draw ops, appending to ops
// and returning the extended slice. Each node's world transform composes its
// parent's transform with the node's local translate-and-rotate. A nil or
// empty tree appends nothing.
func AppendOps(ops []DrawOp, t *Tree, ramp *Ramp, depthLimit int) []DrawOp {
	if t == nil || t.Len() == 0 {
		return ops
	}
	return appendOps(ops, t, 0, identityTransform, ramp, depthLimit)
}

func appendOps(ops []DrawOp, t *Tree, i int32, parent [6]float64, ramp *Ramp, depthLimit int) []DrawOp {
	n := t.Node(i)
	world := multiplyAffine(parent, nodeLocalTransform(n))
	ops = append(ops, DrawOp{
		Transform: world,
		Size:      n.Width,
		Level:     n.Level,
		Color:     ramp.At(n.Level, depthLimit),
	})
	if n.Left != NoChild {
		ops = appendOps(ops, t, n.Left, world, ramp, depthLimit)
	}
	if n.Right != NoChild {
		ops = appendOps(ops, t, n.Right, world, ramp, depthLimit)
	}
	return ops
}

// fadeDuration is how long a newly grown depth level takes to fade in.
const fadeDuration = 0.35

// Renderer composites the fractal onto an ebiten image. Squares are drawn
// as scaled white-pixel sprites tinted with the ramp color. When the depth
// limit grows, the new deepest level fades in rather than popping.
//
// The op buffer is reused across frames.
type Renderer struct {
	Ramp       *Ramp
	ClearColor Color

	ops       []DrawOp
	fadeLevel int
	fadeAlpha float64
	fade      *gween.Tween
}

// NewRenderer creates a renderer. A nil ramp selects the default viridis ramp.
func NewRenderer(ramp *Ramp) *Renderer {
	if ramp == nil {
		ramp = DefaultRamp()
	}
	return &Renderer{
		Ramp:       ramp,
		ClearColor: Color{0.08, 0.08, 0.11, 1},
		fadeLevel:  -1,
		fadeAlpha:  1,
	}
}

// BeginFade starts a fade-in for the given depth level. Called when the
// growth scheduler adds a level; the squares at that level start transparent
// and ease to full opacity.
func (r *Renderer) BeginFade(level int) {
	r.fadeLevel = level
	r.fadeAlpha = 0
	r.fade = gween.New(0, 1, fadeDuration, ease.OutQuad)
}

// Update advances the fade animation by dt seconds.
func (r *Renderer) Update(dt float32) {
	if r.fade == nil {
		return
	}
	v, done := r.fade.Update(dt)
	r.fadeAlpha = float64(v)
	if done {
		r.fade = nil
		r.fadeAlpha = 1
		r.fadeLevel = -1
	}
}

// Draw clears the screen and paints the tree. A nil tree clears only.
func (r *Renderer) Draw(screen *ebiten.Image, t *Tree, depthLimit int) {
	screen.Fill(r.ClearColor.toRGBA())

	r.ops = AppendOps(r.ops[:0], t, r.Ramp, depthLimit)
	for i := range r.ops {
		r.drawOp(screen, &r.ops[i])
	}
}

// drawOp submits one square. The unit white pixel is scaled to the square's
// edge length and then carried by the op's world transform.
func (r *Renderer) drawOp(screen *ebiten.Image, op *DrawOp) {
	alpha := op.Color.A
	if op.Level == r.fadeLevel {
		alpha *= r.fadeAlpha
	}
	if alpha <= 0 || op.Size <= 0 {
		return
	}

	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(op.Size, op.Size)

	var world ebiten.GeoM
	m := op.Transform
	world.SetElement(0, 0, m[0])
	world.SetElement(0, 1, m[2])
	world.SetElement(0, 2, m[4])
	world.SetElement(1, 0, m[1])
	world.SetElement(1, 1, m[3])
	world.SetElement(1, 2, m[5])
	opts.GeoM.Concat(world)

	// Premultiply at submission time.
	a := float32(alpha)
	opts.ColorScale.Scale(float32(op.Color.R)*a, float32(op.Color.G)*a, float32(op.Color.B)*a, a)

	screen.DrawImage(whitePixel, &opts)
}
