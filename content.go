package lastleaf

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Content is foreground material drawn above the leaves.
type Content interface {
	Draw(dst *ebiten.Image)
	// Contains reports whether the content claims pointer events at (x, y).
	// Content that returns false lets the pointer reach the leaves beneath.
	Contains(x, y float64) bool
}

// Updater is implemented by content that animates. dt is in seconds.
type Updater interface {
	Update(dt float64)
}

// Layouter is implemented by content that positions itself against the
// screen size. Called whenever the overlay's size changes.
type Layouter interface {
	Layout(width, height float64)
}

// Caption draws centred text over the leaves.
type Caption struct {
	Text  string
	Color Color
	Scale float64
	// Block makes the caption swallow pointer events over its bounds.
	Block bool

	face        *text.GoXFace
	lineSpacing float64
	bounds      Rect
}

// NewCaption creates a caption from cfg using the built-in 7x13 bitmap face.
func NewCaption(cfg CaptionConfig) *Caption {
	face := text.NewGoXFace(basicfont.Face7x13)
	m := face.Metrics()
	scale := cfg.Scale
	if scale <= 0 {
		scale = DefaultCaptionScale
	}
	return &Caption{
		Text:        cfg.Text,
		Color:       cfg.Color,
		Scale:       scale,
		Block:       cfg.Block,
		face:        face,
		lineSpacing: m.HAscent + m.HDescent + m.HLineGap,
	}
}

// Layout centres the caption in a width×height screen.
func (c *Caption) Layout(width, height float64) {
	w, h := c.Measure()
	c.bounds = Rect{X: (width - w) / 2, Y: (height - h) / 2, Width: w, Height: h}
}

// Measure returns the scaled size of the text.
func (c *Caption) Measure() (float64, float64) {
	w, h := text.Measure(c.Text, c.face, c.lineSpacing)
	return w * c.Scale, h * c.Scale
}

// Bounds returns the last laid-out screen rectangle.
func (c *Caption) Bounds() Rect {
	return c.bounds
}

// Contains reports whether a blocking caption covers (x, y).
func (c *Caption) Contains(x, y float64) bool {
	return c.Block && c.Text != "" && c.bounds.Contains(x, y)
}

// Draw renders the caption at its laid-out position.
func (c *Caption) Draw(dst *ebiten.Image) {
	if c.Text == "" || c.Color.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(c.Scale, c.Scale)
	op.GeoM.Translate(c.bounds.X, c.bounds.Y)
	op.ColorScale.Scale(
		float32(c.Color.R*c.Color.A),
		float32(c.Color.G*c.Color.A),
		float32(c.Color.B*c.Color.A),
		float32(c.Color.A),
	)
	op.LineSpacing = c.lineSpacing
	op.PrimaryAlign = text.AlignStart
	text.Draw(dst, c.Text, c.face, op)
}
