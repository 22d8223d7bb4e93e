package lastleaf

import (
	"github.com/phanxgames/lastleaf/drift"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxSwingStep caps the seconds a single Update may advance, so a long stall
// does not skip whole sweeps.
const maxSwingStep = 0.1

// Swing rocks one leaf between -Amplitude and +Amplitude degrees on its own
// timeline. It is never driven by the drift engine; the overlay pauses it when
// the engine reports a group pause.
//
// There is no global animation manager; the overlay calls Update each frame.
type Swing struct {
	Leaf *Leaf

	cfg      SwingConfig
	tween    *gween.Tween
	from, to float32
	angle    float64
	paused   bool
	sweeps   int
}

// NewSwing creates a swing for leaf, starting at -Amplitude.
func NewSwing(leaf *Leaf, cfg SwingConfig) *Swing {
	if cfg.Amplitude <= 0 {
		cfg.Amplitude = DefaultSwingAmp
	}
	if cfg.Period <= 0 {
		cfg.Period = DefaultSwingPeriod
	}
	s := &Swing{
		Leaf: leaf,
		cfg:  cfg,
		from: float32(-cfg.Amplitude),
		to:   float32(cfg.Amplitude),
	}
	s.angle = float64(s.from)
	s.tween = s.newTween()
	leaf.SetOpacity(drift.RestoredOpacity)
	return s
}

func (s *Swing) newTween() *gween.Tween {
	return gween.New(s.from, s.to, float32(s.cfg.Period), ease.InOutSine)
}

// Update advances the timeline by dt seconds. A paused swing holds its angle.
func (s *Swing) Update(dt float64) {
	if s.paused || dt <= 0 {
		return
	}
	dt = min(dt, maxSwingStep)
	v, done := s.tween.Update(float32(dt))
	s.angle = float64(v)
	if done {
		s.from, s.to = s.to, s.from
		s.tween = s.newTween()
		s.sweeps++
	}
}

// Place paints the leaf centred on the configured anchor within vp.
func (s *Swing) Place(vp drift.Viewport) {
	x := vp.Width*s.cfg.X - s.Leaf.Width/2
	y := vp.Height*s.cfg.Y - s.Leaf.Height/2
	s.Leaf.Paint(x, y, s.angle)
}

// SetPaused sets the pause marker.
func (s *Swing) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports the pause marker.
func (s *Swing) Paused() bool {
	return s.paused
}

// Angle returns the current angle in degrees.
func (s *Swing) Angle() float64 {
	return s.angle
}

// Sweeps returns how many one-way sweeps have completed.
func (s *Swing) Sweeps() int {
	return s.sweeps
}
