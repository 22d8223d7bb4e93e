package lastleaf

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	active  bool    // the pointer has a known position
	down    bool    // touch in progress
	x, y    float64 // last known screen position
	hover   *Leaf   // leaf under the mouse (enter/leave)
	touched *Leaf   // leaf the current touch began on
}

// input holds pointer routing state for an Overlay.
type input struct {
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	synthetic    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	cursorSeen       bool
	cursorX, cursorY int

	injectQueue []syntheticEvent
}

// resetTargets forgets hovered and touched leaves without firing callbacks.
// Used when the leaves are rebuilt or their listeners are removed.
func (in *input) resetTargets() {
	for i := range in.pointers {
		in.pointers[i].hover = nil
		in.pointers[i].touched = nil
	}
}

// --- Hit testing ---

// hitTest finds the topmost listening leaf at (x, y). Foreground content that
// claims the point hides every leaf beneath it. Returns nil if nothing is hit.
func (o *Overlay) hitTest(x, y float64) *Leaf {
	for _, c := range o.content {
		if c.Contains(x, y) {
			return nil
		}
	}
	if o.swing != nil {
		if l := o.swing.Leaf; l.Interactive() && l.Contains(x, y) {
			return l
		}
	}
	// Reverse draw order: topmost leaf first.
	for i := len(o.leaves) - 1; i >= 0; i-- {
		if i == o.leader {
			continue
		}
		l := o.leaves[i]
		if l.Interactive() && l.Contains(x, y) {
			return l
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Overlay.Update to handle all mouse and touch
// input. An injected event replaces real input for the frame it is consumed.
func (o *Overlay) processInput() {
	if o.processInjectedInput() {
		return
	}
	o.processMousePointer()
	o.processTouchPointers()
}

// processMousePointer handles the mouse (pointer 0). The cursor only takes
// part once it has moved, so an injected position holds until the user moves
// the mouse. Hover is re-evaluated every frame since leaves drift under a
// still cursor.
func (o *Overlay) processMousePointer() {
	in := &o.input
	ps := &in.pointers[0]
	mx, my := ebiten.CursorPosition()
	switch {
	case !in.cursorSeen:
		in.cursorSeen = true
		in.cursorX, in.cursorY = mx, my
	case mx != in.cursorX || my != in.cursorY:
		in.cursorX, in.cursorY = mx, my
		ps.active = true
		ps.x, ps.y = float64(mx), float64(my)
	}
	if ps.active {
		o.processHover(0, ps.x, ps.y)
	}
}

// processTouchPointers handles touch input (pointers 1-9).
func (o *Overlay) processTouchPointers() {
	in := &o.input
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		o.processTouch(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			o.processTouch(i, ps.x, ps.y, false)
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), skipping slots
// held by injected touches. Returns -1 if full.
func (in *input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] && !in.synthetic[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processHover fires leave on the previously hovered leaf and enter on the new
// one when the leaf under the pointer changes.
func (o *Overlay) processHover(pointerID int, x, y float64) {
	ps := &o.input.pointers[pointerID]
	ps.active = true
	ps.x, ps.y = x, y

	target := o.hitTest(x, y)
	if target == ps.hover {
		return
	}
	if prev := ps.hover; prev != nil {
		prev.fire(prev.OnPointerLeave, LeafPointerLeave, pointerID, x, y)
	}
	ps.hover = target
	if target != nil {
		target.fire(target.OnPointerEnter, LeafPointerEnter, pointerID, x, y)
	}
}

// processTouch runs the touch state machine for one slot. The end of a touch
// goes to the leaf it started on, wherever the finger is now.
func (o *Overlay) processTouch(pointerID int, x, y float64, down bool) {
	ps := &o.input.pointers[pointerID]
	switch {
	case down && !ps.down:
		ps.active, ps.down = true, true
		ps.x, ps.y = x, y
		ps.touched = o.hitTest(x, y)
		if l := ps.touched; l != nil {
			l.fire(l.OnTouchStart, LeafTouchStart, pointerID, x, y)
		}
	case down:
		ps.x, ps.y = x, y
	case ps.down:
		ps.down = false
		if l := ps.touched; l != nil {
			l.fire(l.OnTouchEnd, LeafTouchEnd, pointerID, ps.x, ps.y)
		}
		ps.touched = nil
	}
}
