package drift

import "slices"

// EventType identifies an engine event.
type EventType uint8

const (
	EventPaused       EventType = iota // a pause command took effect
	EventResumed                       // a resume command took effect
	EventRespawned                     // a particle left the viewport and was respawned
	EventFadeStarted                   // a respawn fade-back began
	EventFadeRestored                  // a respawn fade-back finished; ambient opacity resumes
)

// String returns a short lowercase name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRespawned:
		return "respawned"
	case EventFadeStarted:
		return "fade-started"
	case EventFadeRestored:
		return "fade-restored"
	default:
		return "unknown"
	}
}

// Side is the horizontal respawn side picked by the direction draw.
type Side int8

const (
	SideNone  Side = 0
	SideRight Side = 1  // respawned at +0.85 * viewport width
	SideLeft  Side = -1 // respawned at -0.85 * viewport width
)

// Event describes something that happened during a frame.
type Event struct {
	Type EventType
	// Index is the particle index, or -1 for group events without a source.
	Index int
	// Group is true when a pause or resume applied to every particle.
	Group bool
	// Side is set for EventRespawned.
	Side Side
	// Time is the frame timestamp in milliseconds.
	Time float64
}

// EventStore is an optional sink for engine events, such as an ECS world.
type EventStore interface {
	EmitEvent(event Event)
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

// CallbackHandle removes a listener registered with Engine.OnEvent.
type CallbackHandle struct {
	id  uint32
	eng *Engine
}

// Remove unregisters the listener. Calling it more than once is harmless.
func (h CallbackHandle) Remove() {
	if h.eng == nil {
		return
	}
	// emit may be ranging over the current slice, so never shift it in place.
	h.eng.handlers = slices.DeleteFunc(slices.Clone(h.eng.handlers), func(eh eventHandler) bool {
		return eh.id == h.id
	})
}

// OnEvent registers fn to receive engine events synchronously, in the order
// they occur within a frame.
func (e *Engine) OnEvent(fn func(Event)) CallbackHandle {
	e.nextHandlerID++
	id := e.nextHandlerID
	e.handlers = append(e.handlers, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, eng: e}
}

// SetEventStore sets an optional sink that receives every event after the
// registered listeners.
func (e *Engine) SetEventStore(store EventStore) {
	e.store = store
}

func (e *Engine) emit(ev Event) {
	for _, h := range e.handlers {
		h.fn(ev)
	}
	if e.store != nil {
		e.store.EmitEvent(ev)
	}
}
