package lastleaf

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorTransparent = Color{}
	// ColorLightBlue is the default overlay background.
	ColorLightBlue = Color{173.0 / 255, 216.0 / 255, 230.0 / 255, 1}
)

// RGBA8 returns the premultiplied 8-bit form of c.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	r := uint8(clamp01(c.R)*255 + 0.5)
	g := uint8(clamp01(c.G)*255 + 0.5)
	b := uint8(clamp01(c.B)*255 + 0.5)
	a := uint8(clamp01(c.A)*255 + 0.5)
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// namedColors covers the handful of CSS names the default styles use.
var namedColors = map[string]Color{
	"transparent": ColorTransparent,
	"white":       ColorWhite,
	"black":       {0, 0, 0, 1},
	"lightblue":   ColorLightBlue,
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or one of a few CSS color
// names.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("color %q: expected #hex or a color name", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: bad length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// UnmarshalYAML decodes a color string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes c as a hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// LeafEvent identifies a kind of pointer interaction delivered to a Leaf.
type LeafEvent uint8

const (
	LeafPointerEnter LeafEvent = iota // the mouse moved onto the leaf
	LeafPointerLeave                  // the mouse moved off the leaf
	LeafTouchStart                    // a touch began on the leaf
	LeafTouchEnd                      // a touch that began on the leaf ended
)

// String returns the DOM-style event name.
func (e LeafEvent) String() string {
	switch e {
	case LeafPointerEnter:
		return "mouseenter"
	case LeafPointerLeave:
		return "mouseleave"
	case LeafTouchStart:
		return "touchstart"
	case LeafTouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
