package drift

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
)

const (
	// DefaultAngleStep is the angle, in degrees, added to an unpaused
	// particle every frame regardless of the frame's duration.
	DefaultAngleStep = 0.1

	// respawnSpread is the fraction of the viewport width at which respawned
	// particles re-enter, on either side.
	respawnSpread = 0.85
)

// Options configures an Engine.
type Options struct {
	// Motion selects the displacement divisor per profile. Zero entries fall
	// back to DefaultMotion.
	Motion MotionProfile
	// Rand is the random source for placement, respawn side and angles. Nil
	// uses a randomly seeded PCG.
	Rand *rand.Rand
	// Grouped makes pause and resume commands aimed at Leader apply to every
	// particle.
	Grouped bool
	// Leader is the index of the particle whose interaction pauses the whole
	// set when Grouped is true.
	Leader int
	// AngleStep overrides DefaultAngleStep when non-zero.
	AngleStep float64
	// Debug logs respawns and commands to stderr.
	Debug bool
}

// Engine advances a set of particles once per frame. It is not safe for
// concurrent use; the host calls every method from its frame loop.
type Engine struct {
	particles []Particle
	motion    MotionProfile
	rng       *rand.Rand
	angleStep float64
	grouped   bool
	leader    int
	debug     bool

	commands []command
	tasks    Tasks
	stopped  bool

	handlers      []eventHandler
	nextHandlerID uint32
	store         EventStore
}

// New creates an engine with no particles. Call Init before Update.
func New(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	step := opts.AngleStep
	if step == 0 {
		step = DefaultAngleStep
	}
	return &Engine{
		motion:    opts.Motion,
		rng:       rng,
		angleStep: step,
		grouped:   opts.Grouped,
		leader:    opts.Leader,
		debug:     opts.Debug,
	}
}

// Init discards every particle and allocates count new ones placed uniformly
// inside vp with a uniform angle in [0, 360). Handles are not carried over.
// A count of zero or less yields an empty set. Init also revives a stopped
// engine. Particles start with LastUpdate = 0; use InitAt when reallocating
// mid-session.
func (e *Engine) Init(count int, vp Viewport) {
	e.InitAt(count, vp, 0)
}

// InitAt is Init with every particle's LastUpdate set to now, so the first
// frame after a reallocation moves by one frame's delta rather than the whole
// session time.
func (e *Engine) InitAt(count int, vp Viewport, now float64) {
	e.tasks.CancelAll()
	clear(e.commands)
	e.commands = e.commands[:0]
	e.stopped = false

	if count < 0 {
		count = 0
	}
	e.particles = make([]Particle, count)
	for i := range e.particles {
		p := &e.particles[i]
		p.X = e.rng.Float64() * vp.Width
		p.Y = e.rng.Float64() * vp.Height
		p.Angle = e.rng.Float64() * 360
		p.LastUpdate = now
		p.Opacity = AmbientOpacity(now)
	}
	if e.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[drift] init: %d particles in %.0fx%.0f\n", count, vp.Width, vp.Height)
	}
}

// Len returns the number of particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Particle returns a copy of particle i's state.
func (e *Engine) Particle(i int) Particle {
	return e.particles[i]
}

// Motion returns the engine's motion profile.
func (e *Engine) Motion() MotionProfile {
	return e.motion
}

// SetMotion replaces the motion profile from the next frame on.
func (e *Engine) SetMotion(m MotionProfile) {
	e.motion = m
}

// Grouped reports whether grouped pause is enabled and the leader index.
func (e *Engine) Grouped() (bool, int) {
	return e.grouped, e.leader
}

// SetGroup changes the grouped-pause configuration for commands applied
// after the call.
func (e *Engine) SetGroup(grouped bool, leader int) {
	e.grouped = grouped
	e.leader = leader
}

// Attach binds handles to particle i. Either handle may be nil, in which case
// the particle stays skipped. Out-of-range indices are ignored and reported
// as false.
func (e *Engine) Attach(i int, asset Asset, container Container) bool {
	if i < 0 || i >= len(e.particles) {
		return false
	}
	p := &e.particles[i]
	p.asset = asset
	p.container = container
	return true
}

// Detach removes both handles from particle i.
func (e *Engine) Detach(i int) {
	if i < 0 || i >= len(e.particles) {
		return
	}
	p := &e.particles[i]
	p.asset = nil
	p.container = nil
}

// Update advances the simulation to frame time now (ms, monotonic). Pending
// commands are applied first, then due tasks run, then each attached particle
// is moved, respawned if it crossed the right or bottom edge, and painted.
func (e *Engine) Update(now float64, view View) {
	if e.stopped {
		return
	}
	e.applyCommands(now)
	e.tasks.Run(now)

	div := e.motion.Divisor(view.Profile)
	for i := range e.particles {
		p := &e.particles[i]
		if !p.Attached() {
			continue
		}

		delta := now - p.LastUpdate
		p.LastUpdate = now

		if !p.Paused {
			sin, cos := math.Sincos(p.Angle * math.Pi / 180)
			p.X += sin * delta / div
			p.Y += cos * delta / div
			p.Angle += e.angleStep
		}

		if p.X > view.Width || p.Y > view.Height {
			e.respawn(i, now, view.Viewport)
		}

		if p.fade.advance(now) {
			e.emit(Event{Type: EventFadeRestored, Index: i, Time: now})
		}
		p.Opacity = p.fade.opacity(now)
		p.container.SetOpacity(p.Opacity)
		p.asset.Paint(p.X, p.Y, p.Angle)
	}
}

// respawn blinks particle i out and moves it back inside the viewport.
//
// The side comes from ceil(r*10) % 4: even draws re-enter on the right, odd
// draws on the left, so the four buckets collapse to two outcomes.
func (e *Engine) respawn(i int, now float64, vp Viewport) {
	p := &e.particles[i]
	p.fade.blink()

	side := SideRight
	if int(math.Ceil(e.rng.Float64()*10))%4%2 == 1 {
		side = SideLeft
	}
	p.X = float64(side) * respawnSpread * vp.Width
	p.Y = p.asset.RenderedHeight()
	p.Angle = e.rng.Float64() * 360

	p.fade.task = e.tasks.Schedule(now+FadeDelay, func(at float64) {
		e.particles[i].fade.begin(at)
		e.emit(Event{Type: EventFadeStarted, Index: i, Time: at})
	})

	if e.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[drift] respawn %d at (%.1f, %.1f) side=%d\n", i, p.X, p.Y, side)
	}
	e.emit(Event{Type: EventRespawned, Index: i, Side: side, Time: now})
}

// PendingTasks returns the number of scheduled fade-backs that will still run.
func (e *Engine) PendingTasks() int {
	return e.tasks.Pending()
}

// Stop tears the engine down: queued commands are dropped, every pending task
// is cancelled and further Updates are no-ops. Stop is idempotent.
func (e *Engine) Stop() {
	if e.stopped {
		return
	}
	e.stopped = true
	e.tasks.CancelAll()
	clear(e.commands)
	e.commands = e.commands[:0]
	for i := range e.particles {
		e.particles[i].fade.task = nil
	}
	if e.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[drift] stopped\n")
	}
}

// Stopped reports whether Stop has been called since the last Init.
func (e *Engine) Stopped() bool {
	return e.stopped
}
