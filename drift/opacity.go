package drift

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Opacity constants for the respawn blink and fade-back.
const (
	BlinkOpacity    = 0.1    // painted immediately when a particle respawns
	RestoredOpacity = 0.9    // target of the fade-back
	FadeDelay       = 1000.0 // ms between respawn and the start of the fade-back
	FadeDuration    = 1.0    // seconds the fade-back takes
)

// AmbientOpacity is the shared breathing pulse applied to every particle
// outside a respawn fade: 0.85 + 0.10*sin(t/1000), t in milliseconds.
func AmbientOpacity(t float64) float64 {
	return 0.85 + 0.10*math.Sin(t/1000)
}

type fadePhase uint8

const (
	fadeIdle   fadePhase = iota // ambient pulse
	fadeBlink                   // held at BlinkOpacity until the delayed task fires
	fadeEasing                  // tweening back towards RestoredOpacity
)

// fade tracks one particle's respawn transition. The transition sits above
// the ambient pulse while it runs.
type fade struct {
	phase fadePhase
	tween *gween.Tween
	value float64
	last  float64 // frame time of the last tween advance
	task  *Task
}

func (f *fade) blink() {
	f.task.Cancel()
	f.task = nil
	f.tween = nil
	f.phase = fadeBlink
	f.value = BlinkOpacity
}

func (f *fade) begin(now float64) {
	f.task = nil
	f.phase = fadeEasing
	f.value = BlinkOpacity
	f.last = now
	f.tween = gween.New(BlinkOpacity, RestoredOpacity, FadeDuration, ease.InOutQuad)
}

// advance steps the tween to now. It reports true on the frame the tween
// completes.
func (f *fade) advance(now float64) bool {
	if f.phase != fadeEasing {
		return false
	}
	dt := now - f.last
	if dt <= 0 {
		return false
	}
	f.last = now
	v, finished := f.tween.Update(float32(dt / 1000))
	f.value = float64(v)
	if finished {
		f.reset()
		return true
	}
	return false
}

func (f *fade) reset() {
	f.task.Cancel()
	*f = fade{}
}

// opacity returns the painted opacity at now.
func (f *fade) opacity(now float64) float64 {
	switch f.phase {
	case fadeBlink, fadeEasing:
		return f.value
	default:
		return AmbientOpacity(now)
	}
}
