package lastleaf

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is how many frames pass between debug stat lines.
const debugLogInterval = 120

// debugStats holds per-frame timing and particle counts.
// Only populated when the overlay is in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	leaves     int
	paused     int
	fading     int
	respawns   int
}

// SetDebugMode enables stderr stat lines and engine logging.
func (o *Overlay) SetDebugMode(enabled bool) {
	o.debug = enabled
}

// collectStats counts paused and fading particles for the stat line.
func (o *Overlay) collectStats() {
	o.stats.leaves = o.engine.Len()
	o.stats.paused, o.stats.fading = 0, 0
	for i := range o.stats.leaves {
		p := o.engine.Particle(i)
		if p.Paused {
			o.stats.paused++
		}
		if p.Fading() {
			o.stats.fading++
		}
	}
}

// debugLog prints timing and particle stats to stderr every debugLogInterval
// frames.
func (o *Overlay) debugLog(frame uint64) {
	if !o.debug || frame%debugLogInterval != 0 {
		return
	}
	o.collectStats()
	s := o.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[lastleaf] frame %d | update: %v | draw: %v\n", frame, s.updateTime, s.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[lastleaf] leaves: %d | paused: %d | fading: %d | respawns: %d\n",
		s.leaves, s.paused, s.fading, s.respawns)
}

func (o *Overlay) debugf(format string, args ...any) {
	if !o.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[lastleaf] "+format+"\n", args...)
}
