package lastleaf

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsContent is a corner readout of the current FPS and TPS.
type fpsContent struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

// NewFPSContent returns content that displays the current FPS and TPS in the
// top-left corner. The readout refreshes every ~0.5 seconds and never claims
// pointer events.
func NewFPSContent() Content {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsContent{img: ebiten.NewImage(100, 32), dirty: true}
}

func (f *fpsContent) Update(dt float64) {
	f.lastUpdate += dt
	if f.lastUpdate < 0.5 {
		return
	}
	f.lastUpdate = 0
	f.dirty = true
}

func (f *fpsContent) Draw(dst *ebiten.Image) {
	if f.dirty {
		f.dirty = false
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	dst.DrawImage(f.img, nil)
}

func (f *fpsContent) Contains(x, y float64) bool {
	return false
}
