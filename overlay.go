package lastleaf

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/lastleaf/drift"
)

// Overlay is a full-window layer of drifting leaves with foreground content
// stacked above it. It implements ebiten.Game.
//
// Leaves are built and the engine started on Start, or on the first Update if
// Start was not called. Clock, Rand and EventStore must be set before that.
type Overlay struct {
	// Clock supplies frame timestamps. Nil uses a real clock.
	Clock drift.Clock
	// Rand seeds particle placement. Nil uses a random seed.
	Rand *rand.Rand
	// EventStore receives every engine event.
	EventStore drift.EventStore
	// ScreenshotDir is the directory for Screenshot output.
	ScreenshotDir string

	cfg     *Config
	image   *ebiten.Image
	content []Content

	engine     *drift.Engine
	sched      *drift.Scheduler
	classifier drift.Classifier
	events     drift.CallbackHandle

	leaves []*Leaf
	swing  *Swing
	leader int // index reserved for the swing, or -1

	width, height float64
	profile       drift.Profile
	styled        bool
	lastFrame     float64
	haveFrame     bool

	input     input
	listening bool
	started   bool
	closed    bool

	shots      []shot
	testRunner *TestRunner

	debug bool
	stats debugStats
}

// NewOverlay creates an overlay drawing img for every leaf. A nil cfg uses
// DefaultConfig. content is drawn above the leaves in order.
func NewOverlay(cfg *Config, img *ebiten.Image, content ...Content) *Overlay {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cp := *cfg
	cp.normalize()
	return &Overlay{
		cfg:        &cp,
		image:      img,
		content:    content,
		classifier: cp.Classifier(),
		leader:     -1,
		width:      cp.Container.Width,
		height:     cp.Container.Height,
		debug:      cp.Debug,
	}
}

// Config returns the overlay's configuration. Changes take effect through
// SetCount and SetInteractive.
func (o *Overlay) Config() Config {
	return *o.cfg
}

// Engine returns the drift engine, or nil before Start.
func (o *Overlay) Engine() *drift.Engine {
	return o.engine
}

// Leaves returns every leaf by particle index. The swing leaf, if any, sits
// at the last index.
func (o *Overlay) Leaves() []*Leaf {
	return o.leaves
}

// Swing returns the choreographed leaf's driver, or nil when disabled.
func (o *Overlay) Swing() *Swing {
	return o.swing
}

// Viewport returns the current screen size.
func (o *Overlay) Viewport() drift.Viewport {
	return drift.Viewport{Width: o.width, Height: o.height}
}

// SetViewport sets the screen size. Layout calls this every frame.
func (o *Overlay) SetViewport(width, height float64) {
	if width == o.width && height == o.height {
		return
	}
	o.width, o.height = width, height
	for _, c := range o.content {
		if l, ok := c.(Layouter); ok {
			l.Layout(width, height)
		}
	}
}

// Start builds the leaves, places them in the current viewport and starts the
// frame scheduler. It does nothing after the first call or after Close.
func (o *Overlay) Start() {
	if o.started || o.closed {
		return
	}
	o.started = true
	for _, c := range o.content {
		if l, ok := c.(Layouter); ok {
			l.Layout(o.width, o.height)
		}
	}

	o.engine = drift.New(drift.Options{
		Motion: o.cfg.Motion,
		Rand:   o.Rand,
		Debug:  o.debug,
	})
	o.events = o.engine.OnEvent(o.handleEvent)
	if o.EventStore != nil {
		o.engine.SetEventStore(o.EventStore)
	}
	o.sched = drift.NewScheduler(o.Clock, o.frame)
	o.rebuild()
	o.sched.Start()
	o.debugf("started: %d leaves in %.0fx%.0f", len(o.leaves), o.width, o.height)
}

// rebuild discards every leaf and creates cfg.Count fresh ones.
func (o *Overlay) rebuild() {
	for _, l := range o.leaves {
		l.ClearCallbacks()
	}
	o.input.resetTargets()

	n := o.cfg.Count
	o.leaves = make([]*Leaf, n)
	for i := range n {
		o.leaves[i] = NewLeaf(fmt.Sprintf("leaf-%d", i), i, o.image)
	}

	o.leader, o.swing = -1, nil
	if o.cfg.Swing.Enabled && n > 0 {
		o.leader = n - 1
		o.swing = NewSwing(o.leaves[o.leader], o.cfg.Swing)
	}
	o.engine.SetGroup(o.leader >= 0, o.leader)
	o.engine.InitAt(n, o.Viewport(), o.lastFrame)
	for i, l := range o.leaves {
		if i == o.leader {
			continue
		}
		o.engine.Attach(i, l, l)
	}

	o.styled = false
	o.listening = false
	if o.cfg.Interactive {
		o.attachListeners()
	}
}

// frame runs once per scheduler tick.
func (o *Overlay) frame(now float64) {
	start := time.Now()

	view := drift.ClassifyView(o.classifier, o.Viewport())
	if !o.styled || view.Profile != o.profile {
		o.applyStyle(view.Profile)
	}
	o.engine.Update(now, view)

	var dt float64
	if o.haveFrame {
		dt = (now - o.lastFrame) / 1000
	}
	o.lastFrame, o.haveFrame = now, true

	if o.swing != nil {
		o.swing.Update(dt)
		o.swing.Place(view.Viewport)
	}
	for _, c := range o.content {
		if u, ok := c.(Updater); ok {
			u.Update(dt)
		}
	}

	if o.debug {
		o.stats.updateTime = time.Since(start)
		o.debugLog(o.sched.Frames())
	}
}

// pausedLeaves lists the indices of paused particles.
func (o *Overlay) pausedLeaves() []int {
	if o.engine == nil {
		return nil
	}
	var out []int
	for i := range o.engine.Len() {
		if o.engine.Particle(i).Paused {
			out = append(out, i)
		}
	}
	return out
}

// applyStyle sizes every leaf for profile p. A missing style entry leaves the
// image at its natural size.
func (o *Overlay) applyStyle(p drift.Profile) {
	o.profile, o.styled = p, true
	size, ok := o.cfg.Leaf.For(p)
	for _, l := range o.leaves {
		if ok {
			l.SetStyle(size)
		} else {
			l.ClearStyle()
		}
	}
	o.debugf("profile %s", p)
}

// handleEvent consumes engine events. Group pauses toggle the swing's marker.
func (o *Overlay) handleEvent(ev drift.Event) {
	switch ev.Type {
	case drift.EventPaused, drift.EventResumed:
		if ev.Group && o.swing != nil {
			o.swing.SetPaused(ev.Type == drift.EventPaused)
		}
	case drift.EventRespawned:
		o.stats.respawns++
	}
}

// --- Listeners ---

// attachListeners wires each leaf's pointer and touch callbacks to the
// engine's pause and resume commands.
func (o *Overlay) attachListeners() {
	o.listening = true
	for i, l := range o.leaves {
		pause := func(PointerContext) { o.engine.Pause(i) }
		resume := func(PointerContext) { o.engine.Resume(i) }
		l.OnPointerEnter = pause
		l.OnTouchStart = pause
		l.OnPointerLeave = resume
		l.OnTouchEnd = resume
	}
}

// detachListeners removes every callback so pointers pass through the leaves.
func (o *Overlay) detachListeners() {
	o.listening = false
	for _, l := range o.leaves {
		l.ClearCallbacks()
	}
	o.input.resetTargets()
}

// Interactive reports whether pause listeners are attached.
func (o *Overlay) Interactive() bool {
	return o.cfg.Interactive
}

// SetInteractive attaches or removes the pause listeners. Removing them also
// resumes every paused leaf, since no leave event can arrive any more.
func (o *Overlay) SetInteractive(enabled bool) {
	if o.cfg.Interactive == enabled {
		return
	}
	o.cfg.Interactive = enabled
	if !o.started || o.closed {
		return
	}
	if enabled {
		o.attachListeners()
		return
	}
	o.detachListeners()
	o.engine.ResumeAll()
}

// SetCount replaces every leaf with n fresh ones. Negative n means none.
func (o *Overlay) SetCount(n int) {
	o.cfg.Count = max(n, 0)
	if !o.started || o.closed {
		return
	}
	o.rebuild()
}

// --- ebiten.Game ---

// Update runs one frame: test script, input, then the engine. Returns
// ebiten.Termination after Close or when an exiting test script finishes.
func (o *Overlay) Update() error {
	if o.closed {
		return ebiten.Termination
	}
	if !o.started {
		o.Start()
	}
	if r := o.testRunner; r != nil {
		r.step(o)
		if r.Done() && r.exit && len(o.shots) == 0 {
			return ebiten.Termination
		}
	}
	o.processInput()
	o.sched.Tick()
	return nil
}

// Draw renders the background, the leaves and then the content.
func (o *Overlay) Draw(screen *ebiten.Image) {
	start := time.Now()

	area := o.containerRect(screen.Bounds())
	if bg := o.cfg.Container.Background; bg.A > 0 && !area.Empty() {
		screen.SubImage(area).(*ebiten.Image).Fill(bg.RGBA8())
	}
	layer := screen
	if o.cfg.Container.Clip {
		if area.Empty() {
			layer = nil
		} else {
			layer = screen.SubImage(area).(*ebiten.Image)
		}
	}
	if layer != nil {
		for i, l := range o.leaves {
			if i != o.leader {
				l.draw(layer)
			}
		}
		if o.swing != nil {
			o.swing.Leaf.draw(layer)
		}
	}
	for _, c := range o.content {
		c.Draw(screen)
	}
	o.flushScreenshots(screen)

	if o.debug {
		o.stats.drawTime = time.Since(start)
	}
}

// containerRect returns the wrapper's area within screen.
func (o *Overlay) containerRect(screen image.Rectangle) image.Rectangle {
	r := screen
	if w := o.cfg.Container.Width; w > 0 {
		r.Max.X = r.Min.X + int(w)
	}
	if h := o.cfg.Container.Height; h > 0 {
		r.Max.Y = r.Min.Y + int(h)
	}
	return r.Intersect(screen)
}

// Layout tracks the window size and renders at 1:1.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Close tears the overlay down. It stops the scheduler and the engine, which
// cancels every pending fade, and removes the pointer listeners. Safe to call
// more than once.
func (o *Overlay) Close() {
	if o.closed {
		return
	}
	o.closed = true
	if o.sched != nil {
		o.sched.Stop()
	}
	o.detachListeners()
	if o.engine != nil {
		o.events.Remove()
		o.engine.Stop()
	}
	o.input.injectQueue = nil
	o.debugf("closed")
}

// Closed reports whether Close has been called.
func (o *Overlay) Closed() bool {
	return o.closed
}

// Listening reports whether any leaf has pause listeners attached.
func (o *Overlay) Listening() bool {
	return o.listening
}
