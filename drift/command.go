package drift

type commandKind uint8

const (
	cmdPause commandKind = iota
	cmdResume
	cmdPauseAll
	cmdResumeAll
)

type command struct {
	kind  commandKind
	index int
}

// Pause queues a pause for particle i. In grouped mode, pausing the leader
// pauses every particle. The command takes effect at the start of the next
// Update.
func (e *Engine) Pause(i int) {
	e.enqueue(command{kind: cmdPause, index: i})
}

// Resume queues a resume for particle i. In grouped mode, resuming the leader
// resumes every particle.
func (e *Engine) Resume(i int) {
	e.enqueue(command{kind: cmdResume, index: i})
}

// PauseAll queues a pause for every particle.
func (e *Engine) PauseAll() {
	e.enqueue(command{kind: cmdPauseAll, index: -1})
}

// ResumeAll queues a resume for every particle.
func (e *Engine) ResumeAll() {
	e.enqueue(command{kind: cmdResumeAll, index: -1})
}

// PendingCommands returns the number of queued commands.
func (e *Engine) PendingCommands() int {
	return len(e.commands)
}

func (e *Engine) enqueue(c command) {
	if e.stopped {
		return
	}
	e.commands = append(e.commands, c)
}

// applyCommands drains the command queue in arrival order.
func (e *Engine) applyCommands(now float64) {
	for _, c := range e.commands {
		switch c.kind {
		case cmdPause:
			e.setPaused(c.index, true, now)
		case cmdResume:
			e.setPaused(c.index, false, now)
		case cmdPauseAll:
			e.setAllPaused(-1, true, now)
		case cmdResumeAll:
			e.setAllPaused(-1, false, now)
		}
	}
	clear(e.commands)
	e.commands = e.commands[:0]
}

func (e *Engine) setPaused(i int, paused bool, now float64) {
	if i < 0 || i >= len(e.particles) {
		return
	}
	if e.grouped && i == e.leader {
		e.setAllPaused(i, paused, now)
		return
	}
	p := &e.particles[i]
	if p.Paused == paused {
		return
	}
	p.Paused = paused
	e.emit(Event{Type: pauseEventType(paused), Index: i, Time: now})
}

func (e *Engine) setAllPaused(source int, paused bool, now float64) {
	for i := range e.particles {
		e.particles[i].Paused = paused
	}
	e.emit(Event{Type: pauseEventType(paused), Index: source, Group: true, Time: now})
}

func pauseEventType(paused bool) EventType {
	if paused {
		return EventPaused
	}
	return EventResumed
}
