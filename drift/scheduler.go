package drift

import "time"

// Clock supplies monotonic frame timestamps in milliseconds.
type Clock interface {
	Now() float64
}

// RealClock measures milliseconds elapsed since it was created, using the
// monotonic reading of time.Now.
type RealClock struct {
	start time.Time
}

// NewRealClock starts a clock at zero.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// Now implements Clock.
func (c *RealClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock is a Clock moved explicitly, for deterministic frames.
type ManualClock struct {
	now float64
}

// Now implements Clock.
func (c *ManualClock) Now() float64 {
	return c.now
}

// Set moves the clock to t. Moving backwards is ignored.
func (c *ManualClock) Set(t float64) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms float64) {
	if ms > 0 {
		c.now += ms
	}
}

// FrameFunc receives the timestamp of a frame.
type FrameFunc func(now float64)

// Scheduler drives a FrameFunc once per host frame while running. The host
// loop (an ebiten Update, a terminal ticker, a test) calls Tick; Start and
// Stop gate whether Tick does anything.
type Scheduler struct {
	clock   Clock
	frame   FrameFunc
	running bool
	stopped bool
	frames  uint64
	last    float64
}

// NewScheduler creates a stopped scheduler. A nil clock uses a RealClock.
func NewScheduler(clock Clock, frame FrameFunc) *Scheduler {
	if clock == nil {
		clock = NewRealClock()
	}
	return &Scheduler{clock: clock, frame: frame}
}

// Start begins forwarding frames. It has no effect after Stop.
func (s *Scheduler) Start() {
	if s.stopped {
		return
	}
	s.running = true
}

// Stop ends frame scheduling for good. Calling it again is a no-op.
func (s *Scheduler) Stop() {
	s.running = false
	s.stopped = true
}

// Running reports whether Tick currently forwards frames.
func (s *Scheduler) Running() bool {
	return s.running
}

// Tick runs one frame with the clock's current time. Timestamps handed to
// the frame func never decrease.
func (s *Scheduler) Tick() {
	if !s.running {
		return
	}
	now := s.clock.Now()
	if now < s.last {
		now = s.last
	}
	s.last = now
	s.frames++
	s.frame(now)
}

// Frames returns the number of frames run so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Clock returns the scheduler's clock.
func (s *Scheduler) Clock() Clock {
	return s.clock
}
