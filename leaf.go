package lastleaf

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerContext carries the data for a pointer or touch event on a Leaf.
type PointerContext struct {
	Leaf      *Leaf
	Event     LeafEvent
	X, Y      float64 // screen coordinates
	PointerID int     // 0 = mouse, 1-9 = touch slots
}

// Leaf is one drawn leaf. It is the paintable handle and the opacity wrapper
// the drift engine writes to each frame.
type Leaf struct {
	Name  string
	Index int

	// X, Y and Angle are the last painted translation and rotation (degrees).
	X, Y  float64
	Angle float64
	// Alpha is the opacity in [0, 1].
	Alpha float64
	// Width and Height are the on-screen size.
	Width, Height float64
	Visible       bool

	// Pointer callbacks. A leaf with none of these set is transparent to
	// pointer events.
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnTouchStart   func(PointerContext)
	OnTouchEnd     func(PointerContext)

	image          *ebiten.Image
	naturalW       float64
	naturalH       float64
	transform      [6]float64
	transformDirty bool
}

// NewLeaf creates a leaf drawing img. img may be nil, in which case the leaf
// is never drawn but still takes part in motion and hit testing.
func NewLeaf(name string, index int, img *ebiten.Image) *Leaf {
	l := &Leaf{
		Name:           name,
		Index:          index,
		Alpha:          1,
		Visible:        true,
		image:          img,
		transformDirty: true,
	}
	if img != nil {
		b := img.Bounds()
		l.naturalW = float64(b.Dx())
		l.naturalH = float64(b.Dy())
		l.Width, l.Height = l.naturalW, l.naturalH
	}
	return l
}

// Image returns the leaf's image.
func (l *Leaf) Image() *ebiten.Image {
	return l.image
}

// SetStyle applies a size. A zero Height keeps the image's aspect ratio; a
// zero Width keeps the natural width. Without an image, a zero Height makes
// the leaf square.
func (l *Leaf) SetStyle(s Size) {
	w := s.Width
	if w <= 0 {
		w = l.naturalW
	}
	h := s.Height
	if h <= 0 {
		switch {
		case l.naturalW > 0:
			h = w * l.naturalH / l.naturalW
		default:
			h = w
		}
	}
	l.Width, l.Height = w, h
	l.transformDirty = true
}

// ClearStyle restores the image's natural size.
func (l *Leaf) ClearStyle() {
	l.Width, l.Height = l.naturalW, l.naturalH
	l.transformDirty = true
}

// RenderedHeight reports the on-screen height.
func (l *Leaf) RenderedHeight() float64 {
	return l.Height
}

// Paint translates the leaf by (x, y) then rotates it by angle degrees about
// its centre.
func (l *Leaf) Paint(x, y, angle float64) {
	if l.X == x && l.Y == y && l.Angle == angle {
		return
	}
	l.X, l.Y, l.Angle = x, y, angle
	l.transformDirty = true
}

// SetOpacity sets the leaf's alpha, clamped to [0, 1].
func (l *Leaf) SetOpacity(alpha float64) {
	l.Alpha = clamp01(alpha)
}

// Interactive reports whether any pointer callback is set.
func (l *Leaf) Interactive() bool {
	return l.OnPointerEnter != nil || l.OnPointerLeave != nil ||
		l.OnTouchStart != nil || l.OnTouchEnd != nil
}

// ClearCallbacks removes every pointer callback.
func (l *Leaf) ClearCallbacks() {
	l.OnPointerEnter = nil
	l.OnPointerLeave = nil
	l.OnTouchStart = nil
	l.OnTouchEnd = nil
}

// Transform returns the leaf's box-to-screen affine matrix.
func (l *Leaf) Transform() [6]float64 {
	if l.transformDirty {
		l.transform = leafTransform(l.X, l.Y, l.Angle, l.Width, l.Height)
		l.transformDirty = false
	}
	return l.transform
}

// Contains reports whether the screen point (x, y) lies inside the leaf's
// rotated box.
func (l *Leaf) Contains(x, y float64) bool {
	if !l.Visible || l.Width <= 0 || l.Height <= 0 {
		return false
	}
	lx, ly := transformPoint(invertAffine(l.Transform()), x, y)
	return lx >= 0 && lx <= l.Width && ly >= 0 && ly <= l.Height
}

// LocalToScreen converts a point in the leaf's box to screen coordinates.
func (l *Leaf) LocalToScreen(lx, ly float64) (float64, float64) {
	return transformPoint(l.Transform(), lx, ly)
}

func (l *Leaf) fire(fn func(PointerContext), ev LeafEvent, pointerID int, x, y float64) {
	if fn == nil {
		return
	}
	fn(PointerContext{Leaf: l, Event: ev, X: x, Y: y, PointerID: pointerID})
}

// draw renders the leaf onto dst.
func (l *Leaf) draw(dst *ebiten.Image) {
	if !l.Visible || l.image == nil || l.Alpha <= 0 || l.Width <= 0 || l.Height <= 0 {
		return
	}
	scale := [6]float64{l.Width / l.naturalW, 0, 0, l.Height / l.naturalH, 0, 0}
	var op ebiten.DrawImageOptions
	op.GeoM = geoM(multiplyAffine(l.Transform(), scale))
	op.ColorScale.ScaleAlpha(float32(l.Alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(l.image, &op)
}
