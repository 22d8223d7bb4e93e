package lastleaf

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
)

// DefaultScreenshotDir is where screenshots go when ScreenshotDir is empty.
const DefaultScreenshotDir = "screenshots"

// shot is a queued capture and the overlay state at the time it was asked for.
type shot struct {
	Label    string  `yaml:"label"`
	Frame    uint64  `yaml:"frame"`
	Profile  string  `yaml:"profile"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Leaves   int     `yaml:"leaves"`
	Paused   []int   `yaml:"paused"`
	Swinging bool    `yaml:"swinging,omitempty"`
}

// filename is the capture's base name: frame number, profile, then label.
func (s shot) filename() string {
	return fmt.Sprintf("f%06d_%s_%s", s.Frame, s.Profile, sanitizeLabel(s.Label))
}

// Screenshot asks for the next composed frame to be saved as a PNG in
// ScreenshotDir, next to a YAML file describing the leaves at that moment.
func (o *Overlay) Screenshot(label string) {
	s := shot{
		Label:   label,
		Profile: o.profile.String(),
		Width:   o.width,
		Height:  o.height,
		Leaves:  len(o.leaves),
		Paused:  o.pausedLeaves(),
	}
	if o.sched != nil {
		s.Frame = o.sched.Frames()
	}
	if o.swing != nil {
		s.Swinging = !o.swing.Paused()
	}
	o.shots = append(o.shots, s)
}

// flushScreenshots writes every queued capture of screen.
func (o *Overlay) flushScreenshots(screen *ebiten.Image) {
	if len(o.shots) == 0 {
		return
	}
	defer func() { o.shots = o.shots[:0] }()

	dir := o.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[lastleaf] screenshot: %v\n", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := straightAlpha(pixels, b.Dx(), b.Dy())

	for _, s := range o.shots {
		if err := writeShot(dir, s, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[lastleaf] screenshot: %v\n", err)
		}
	}
}

// writeShot saves the PNG and its YAML description.
func writeShot(dir string, s shot, img image.Image) error {
	base := filepath.Join(dir, s.filename())
	if err := writePNG(base+".png", img); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.Label, err)
	}
	return os.WriteFile(base+".yaml", data, 0o644)
}

// straightAlpha converts ebiten's premultiplied pixels to NRGBA.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Copy(dst, image.Point{}, src, src.Rect, draw.Src, nil)
	return dst
}

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

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else to
// '_', and names an empty label "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
