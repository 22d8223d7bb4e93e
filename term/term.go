package term

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/lastleaf/drift"
)

const (
	// DefaultCellWidth and DefaultCellHeight are the pixel size one
	// terminal cell stands for.
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	// DefaultCount is the number of leaves in DefaultOptions.
	DefaultCount = 7
	// frameInterval is roughly one frame at 60 Hz.
	frameInterval = 16 * time.Millisecond
)

// Options configures a Renderer.
type Options struct {
	// Count is the number of leaves. Zero or less means none.
	Count int
	// CellWidth and CellHeight override the pixel size of one cell.
	CellWidth, CellHeight float64
	Motion                drift.MotionProfile
	// Glyphs replaces DefaultGlyphs.
	Glyphs []rune
	// Interactive enables pause on hover.
	Interactive bool
	// Status draws a one-line summary on the bottom row.
	Status bool
	Rand   *rand.Rand
	Clock  drift.Clock
	// Log receives debug output. Nil discards it.
	Log io.Writer
}

// DefaultOptions returns DefaultCount interactive leaves at the default cell
// size.
func DefaultOptions() Options {
	return Options{
		Count:       DefaultCount,
		CellWidth:   DefaultCellWidth,
		CellHeight:  DefaultCellHeight,
		Motion:      drift.DefaultMotion,
		Interactive: true,
	}
}

// Renderer owns a drift engine and paints its leaves onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	opts   Options
	cellW  float64
	cellH  float64
	glyphs []rune

	engine *drift.Engine
	sched  *drift.Scheduler
	leaves []*Glyph
	vp     drift.Viewport

	hovered int
	closed  bool
}

// NewScreen creates and initializes a terminal screen with mouse motion
// reporting enabled.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}

// New creates a renderer on an initialized screen and starts its scheduler.
// The caller keeps ownership of the screen and finalizes it.
func New(screen tcell.Screen, opts Options) *Renderer {
	r := &Renderer{
		screen:  screen,
		opts:    opts,
		cellW:   opts.CellWidth,
		cellH:   opts.CellHeight,
		glyphs:  opts.Glyphs,
		hovered: -1,
	}
	if r.cellW <= 0 {
		r.cellW = DefaultCellWidth
	}
	if r.cellH <= 0 {
		r.cellH = DefaultCellHeight
	}
	if len(r.glyphs) == 0 {
		r.glyphs = DefaultGlyphs
	}
	count := max(opts.Count, 0)

	r.engine = drift.New(drift.Options{
		Motion: opts.Motion,
		Rand:   opts.Rand,
	})
	r.engine.OnEvent(r.logEvent)
	r.resize()
	r.engine.Init(count, r.vp)

	r.leaves = make([]*Glyph, count)
	for i := range r.leaves {
		g := &Glyph{Index: i, height: r.cellH}
		r.leaves[i] = g
		r.engine.Attach(i, g, g)
	}

	r.sched = drift.NewScheduler(opts.Clock, r.frame)
	r.sched.Start()
	return r
}

// Engine returns the underlying drift engine.
func (r *Renderer) Engine() *drift.Engine {
	return r.engine
}

// Leaves returns the glyph handles in engine order.
func (r *Renderer) Leaves() []*Glyph {
	return r.leaves
}

// Viewport returns the screen size in pixels.
func (r *Renderer) Viewport() drift.Viewport {
	return r.vp
}

// Interactive reports whether hover pauses leaves.
func (r *Renderer) Interactive() bool {
	return r.opts.Interactive
}

// SetInteractive toggles pause on hover. Turning it off resumes every leaf.
func (r *Renderer) SetInteractive(enabled bool) {
	if r.opts.Interactive == enabled {
		return
	}
	r.opts.Interactive = enabled
	if !enabled {
		r.hovered = -1
		r.engine.ResumeAll()
	}
}

func (r *Renderer) resize() {
	w, h := r.screen.Size()
	r.vp = drift.Viewport{Width: float64(w) * r.cellW, Height: float64(h) * r.cellH}
}

func (r *Renderer) frame(now float64) {
	r.engine.Update(now, drift.DefaultBreakpoint.View(r.vp))
}

func (r *Renderer) logEvent(ev drift.Event) {
	if r.opts.Log == nil {
		return
	}
	fmt.Fprintf(r.opts.Log, "[lastleaf/term] %s leaf=%d t=%.0f\n", ev.Type, ev.Index, ev.Time)
}

// Frame advances the simulation by one tick and redraws the screen.
func (r *Renderer) Frame() {
	if r.closed {
		return
	}
	r.sched.Tick()
	r.Draw()
}

// Draw paints every leaf that lies on screen. Later leaves draw over
// earlier ones sharing a cell.
func (r *Renderer) Draw() {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	for i, g := range r.leaves {
		if !r.engine.Particle(i).Attached() {
			continue
		}
		cx, cy := g.Cell(r.cellW, r.cellH)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		r.screen.SetContent(cx, cy, g.Rune(r.glyphs), nil, g.Style())
	}
	if r.opts.Status && rows > 0 {
		r.drawStatus(rows - 1)
	}
	r.screen.Show()
}

func (r *Renderer) drawStatus(row int) {
	paused := 0
	for i := range r.leaves {
		if r.engine.Particle(i).Paused {
			paused++
		}
	}
	line := fmt.Sprintf("leaves: %d | paused: %d | q to quit", len(r.leaves), paused)
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x, ch := range []rune(line) {
		r.screen.SetContent(x, row, ch, nil, style)
	}
}

// HitTest returns the topmost leaf drawn at cell (col, row), or -1.
func (r *Renderer) HitTest(col, row int) int {
	for i := len(r.leaves) - 1; i >= 0; i-- {
		if !r.engine.Particle(i).Attached() {
			continue
		}
		cx, cy := r.leaves[i].Cell(r.cellW, r.cellH)
		if cx == col && cy == row {
			return i
		}
	}
	return -1
}

// HandleEvent reacts to one terminal event. It returns false when the user
// asked to quit.
func (r *Renderer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.resize()
	case *tcell.EventMouse:
		if r.opts.Interactive {
			r.hover(ev.Position())
		}
	}
	return true
}

// hover moves the pause from the previously hovered leaf to the one under
// the pointer.
func (r *Renderer) hover(col, row int) {
	hit := r.HitTest(col, row)
	if hit == r.hovered {
		return
	}
	if r.hovered >= 0 {
		r.engine.Resume(r.hovered)
	}
	if hit >= 0 {
		r.engine.Pause(hit)
	}
	r.hovered = hit
}

// Run draws frames until ctx is cancelled or the user quits. It closes the
// renderer before returning.
func (r *Renderer) Run(ctx context.Context) error {
	defer r.Close()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	r.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			r.Frame()
		}
	}
}

// Close stops the scheduler and the engine. The screen is left to its
// owner. Calling Close again is a no-op.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.sched.Stop()
	r.engine.Stop()
}

// Closed reports whether Close has run.
func (r *Renderer) Closed() bool {
	return r.closed
}
