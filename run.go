package pythagoras

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title         string
	ShowFPS       bool
	Debug         bool   // log rebuild timings to stderr
	ScreenshotDir string // default "screenshots"
	Ramp          *Ramp  // nil selects the default viridis ramp
}

// Run opens a window sized to the model's drawing surface and runs the
// interactive fractal until the window closes or Escape is pressed.
//
// Each frame reads the pointer position (a moved pointer reshapes the tree),
// feeds elapsed time to the growth scheduler, and draws the current tree.
// Pressing S saves a screenshot.
func Run(model *Model, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "Pythagoras"
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}

	w, h := model.SurfaceSize()
	g := &game{
		model:    model,
		renderer: NewRenderer(cfg.Ramp),
		shots:    &screenshots{Dir: cfg.ScreenshotDir},
		debug:    cfg.Debug,
		width:    int(w),
		height:   int(h),
	}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(g)
}

// game implements ebiten.Game: the event source wiring between ebiten's
// input/timer facilities and the Model.
type game struct {
	model    *Model
	renderer *Renderer
	fps      *fpsOverlay
	shots    *screenshots
	debug    bool

	width, height int

	lastX, lastY int
	havePointer  bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.shots.Queue(g.model)
	}

	dt := time.Second / time.Duration(ebiten.TPS())

	// Pointer moves rebuild at the current depth limit. The first frame only
	// records the position so startup doesn't count as a move.
	mx, my := ebiten.CursorPosition()
	if !g.havePointer {
		g.havePointer = true
		g.lastX, g.lastY = mx, my
	} else if mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY = mx, my
		g.timedRebuild("pointer", func() bool { return g.model.PointerMove(mx, my) })
	}

	// Growth ticks rebuild at the new depth limit and fade the new level in.
	grew := g.timedRebuild("grow", func() bool { return g.model.Advance(dt) })
	if grew {
		g.renderer.BeginFade(g.model.DepthLimit())
	}

	g.renderer.Update(float32(dt.Seconds()))
	if g.fps != nil {
		g.fps.update(dt.Seconds(), g.model)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.model.Tree(), g.model.DepthLimit())
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.shots.flush(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// timedRebuild runs a rebuild trigger and, in debug mode, logs its duration
// and the resulting tree and cache state to stderr.
func (g *game) timedRebuild(cause string, fn func() bool) bool {
	if !g.debug {
		return fn()
	}
	t0 := time.Now()
	fired := fn()
	if !fired {
		return false
	}
	stats := g.model.CacheStats()
	_, _ = fmt.Fprintf(os.Stderr,
		"[pythagoras] %s rebuild: %v | depth: %d | nodes: %d | cache: %d lookups, %.0f%% hit\n",
		cause, time.Since(t0), g.model.DepthLimit(), g.model.Tree().Len(),
		stats.Hits+stats.Misses, stats.HitRate*100)
	return true
}
