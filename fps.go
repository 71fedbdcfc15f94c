package pythagoras

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws FPS/TPS plus fractal state in the top-left corner.
// The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	accum float64
	text  string
}

func (f *fpsOverlay) update(dt float64, m *Model) {
	f.accum += dt
	if f.text != "" && f.accum < 0.5 {
		return
	}
	f.accum = 0

	stats := m.CacheStats()
	nodes := 0
	if t := m.Tree(); t != nil {
		nodes = t.Len()
	}
	f.text = fmt.Sprintf("FPS: %.1f  TPS: %.1f\nDepth: %d  Nodes: %d\nCache hit: %.0f%%",
		ebiten.ActualFPS(), ebiten.ActualTPS(), m.DepthLimit(), nodes, stats.HitRate*100)
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, f.text)
}
