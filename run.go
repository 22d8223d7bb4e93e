package lastleaf

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	// TPS overrides ebiten's default ticks per second when non-zero.
	TPS int
}

// Run opens a resizable window and runs o until the window closes or o stops
// the loop. o is closed before Run returns.
func Run(o *Overlay, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = DefaultCaptionText
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	defer o.Close()

	if err := ebiten.RunGame(o); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// LoadImage loads a leaf image from a file.
func LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return img, nil
}

// DefaultLeafImage draws a plain autumn leaf size pixels tall, for use when no
// asset is available.
func DefaultLeafImage(size int) *ebiten.Image {
	return ebiten.NewImageFromImage(leafShape(size))
}

// leafShape rasterizes a pointed-ellipse leaf with a darker midrib.
func leafShape(size int) *image.NRGBA {
	size = max(size, 8)
	w, h := size*2/3, size
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	body := color.NRGBA{R: 196, G: 120, B: 40, A: 255}
	rib := color.NRGBA{R: 120, G: 70, B: 20, A: 255}
	cx := float64(w) / 2
	for y := range h {
		// Half-width follows a sine arch so both tips come to a point.
		t := (float64(y) + 0.5) / float64(h)
		half := math.Sin(t*math.Pi) * cx * 0.95
		for x := range w {
			dx := math.Abs(float64(x) + 0.5 - cx)
			switch {
			case dx <= 0.75 && t > 0.05:
				img.SetNRGBA(x, y, rib)
			case dx <= half:
				img.SetNRGBA(x, y, body)
			}
		}
	}
	return img
}
