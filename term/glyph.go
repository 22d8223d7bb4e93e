package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// DefaultGlyphs are the runes a leaf cycles through as it turns, one per
// quarter turn.
var DefaultGlyphs = []rune{'❦', '❧', '☙', '❥'}

// leafRGB is the full-opacity leaf color.
var leafRGB = [3]float64{230, 140, 40}

// Glyph is one leaf drawn as a single cell. It implements drift.Asset and
// drift.Container.
type Glyph struct {
	Index   int
	X, Y    float64 // painted pixel position
	Angle   float64 // degrees
	Opacity float64

	height float64
}

// RenderedHeight reports one cell's height in pixels.
func (g *Glyph) RenderedHeight() float64 {
	return g.height
}

// Paint records the pixel position and angle.
func (g *Glyph) Paint(x, y, angle float64) {
	g.X, g.Y, g.Angle = x, y, angle
}

// SetOpacity records the opacity.
func (g *Glyph) SetOpacity(alpha float64) {
	g.Opacity = alpha
}

// Cell returns the column and row the glyph occupies.
func (g *Glyph) Cell(cellW, cellH float64) (int, int) {
	return int(math.Floor(g.X / cellW)), int(math.Floor(g.Y / cellH))
}

// Rune picks the glyph for the current angle.
func (g *Glyph) Rune(glyphs []rune) rune {
	if len(glyphs) == 0 {
		return '*'
	}
	q := int(math.Floor(g.Angle/90)) % len(glyphs)
	if q < 0 {
		q += len(glyphs)
	}
	return glyphs[q]
}

// Style maps opacity to color intensity over a black background.
func (g *Glyph) Style() tcell.Style {
	a := max(0, min(g.Opacity, 1))
	c := tcell.NewRGBColor(
		int32(leafRGB[0]*a),
		int32(leafRGB[1]*a),
		int32(leafRGB[2]*a),
	)
	return tcell.StyleDefault.Foreground(c).Background(tcell.ColorBlack)
}
