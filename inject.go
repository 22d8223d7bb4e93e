package lastleaf

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticTouchStart
	syntheticTouchEnd
)

// syntheticEvent is a single injected pointer event in screen coordinates.
type syntheticEvent struct {
	kind syntheticKind
	id   int
	x, y float64
}

// InjectMove queues a mouse move to (x, y). The event is consumed on the next
// frame's input pass and the position holds until the real cursor moves.
func (o *Overlay) InjectMove(x, y float64) {
	o.input.injectQueue = append(o.input.injectQueue, syntheticEvent{
		kind: syntheticMove, x: x, y: y,
	})
}

// InjectTouchStart queues the start of touch id at (x, y). id selects a touch
// slot and is clamped to 1-9.
func (o *Overlay) InjectTouchStart(id int, x, y float64) {
	o.input.injectQueue = append(o.input.injectQueue, syntheticEvent{
		kind: syntheticTouchStart, id: touchSlotID(id), x: x, y: y,
	})
}

// InjectTouchEnd queues the end of touch id.
func (o *Overlay) InjectTouchEnd(id int) {
	o.input.injectQueue = append(o.input.injectQueue, syntheticEvent{
		kind: syntheticTouchEnd, id: touchSlotID(id),
	})
}

// InjectTap queues a touch start and end at (x, y) on slot 1. Consumes two
// frames.
func (o *Overlay) InjectTap(x, y float64) {
	o.InjectTouchStart(1, x, y)
	o.InjectTouchEnd(1)
}

// PendingInjections returns the number of queued synthetic events.
func (o *Overlay) PendingInjections() int {
	return len(o.input.injectQueue)
}

func touchSlotID(id int) int {
	return max(1, min(id, maxPointers-1))
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same state machines as real input. Returns true if an event was
// consumed (real input is skipped for that frame).
func (o *Overlay) processInjectedInput() bool {
	in := &o.input
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		// Pin the real cursor so it only takes over once it moves.
		in.cursorSeen = true
		in.cursorX, in.cursorY = ebiten.CursorPosition()
		o.processHover(0, evt.x, evt.y)
	case syntheticTouchStart:
		in.synthetic[evt.id] = true
		o.processTouch(evt.id, evt.x, evt.y, true)
	case syntheticTouchEnd:
		ps := &in.pointers[evt.id]
		o.processTouch(evt.id, ps.x, ps.y, false)
		in.synthetic[evt.id] = false
	}
	return true
}
