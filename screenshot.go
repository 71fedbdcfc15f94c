package pythagoras

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// capture is a snapshot request recorded at the moment the user asked for
// it, so the file name reflects the fractal state that was on screen even
// if the model changes before the frame is written.
type capture struct {
	depth  int
	params ShapeParams
}

// screenshots collects capture requests during Update and writes them at
// the end of the frame's Draw, when the screen holds the finished
// composite. Each capture becomes a PNG under Dir named after the captured
// depth and shape parameters.
type screenshots struct {
	Dir     string
	pending []capture
}

// Queue schedules a capture of the model's current state.
func (s *screenshots) Queue(m *Model) {
	s.pending = append(s.pending, capture{
		depth:  m.DepthLimit(),
		params: m.Params(),
	})
}

// flush writes one PNG per pending capture. The renderer clears the screen
// to an opaque color every frame, so the frame's pixels carry full alpha
// and premultiplied RGBA equals plain RGBA; the pixels are encoded as-is.
// Failures are logged to stderr, never fatal.
func (s *screenshots) flush(screen *ebiten.Image) {
	if len(s.pending) == 0 {
		return
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[pythagoras] screenshot: mkdir %s: %v\n", s.Dir, err)
		s.pending = s.pending[:0]
		return
	}

	bounds := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	screen.ReadPixels(img.Pix)

	stamp := time.Now().Format("20060102_150405")
	for _, c := range s.pending {
		path := filepath.Join(s.Dir, captureName(stamp, c))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[pythagoras] screenshot: %v\n", err)
		}
	}

	s.pending = s.pending[:0]
}

// captureName encodes the captured state into the file name:
// pythagoras_<stamp>_d<depth>_hf<heightFactor>_lean<lean>.png. Parameters
// are rounded to two decimals, matching the cache key resolution.
func captureName(stamp string, c capture) string {
	return fmt.Sprintf("pythagoras_%s_d%02d_hf%.2f_lean%+.2f.png",
		stamp, c.depth, c.params.HeightFactor, c.params.Lean)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
