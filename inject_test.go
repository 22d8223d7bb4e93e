package lastleaf

import "testing"

func TestInjectQueuesEvents(t *testing.T) {
	o := NewOverlay(nil, nil)
	o.InjectMove(1, 2)
	o.InjectTouchStart(3, 4, 5)
	o.InjectTouchEnd(3)
	if o.PendingInjections() != 3 {
		t.Fatalf("queued = %d, want 3", o.PendingInjections())
	}
	q := o.input.injectQueue
	if q[0].kind != syntheticMove || q[0].x != 1 || q[0].y != 2 {
		t.Errorf("move = %+v", q[0])
	}
	if q[1].kind != syntheticTouchStart || q[1].id != 3 {
		t.Errorf("touch start = %+v", q[1])
	}
	if q[2].kind != syntheticTouchEnd || q[2].id != 3 {
		t.Errorf("touch end = %+v", q[2])
	}
}

func TestInjectTouchIDClamped(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {-3, 1}, {1, 1}, {9, 9}, {42, 9},
	}
	for _, tt := range tests {
		if got := touchSlotID(tt.in); got != tt.want {
			t.Errorf("touchSlotID(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestInjectOnePerFrame(t *testing.T) {
	o, _ := newTestOverlay(t, nil)
	o.InjectTap(10, 10)
	if o.PendingInjections() != 2 {
		t.Fatalf("tap should queue 2 events, got %d", o.PendingInjections())
	}
	if !o.processInjectedInput() {
		t.Fatal("first event not consumed")
	}
	if o.PendingInjections() != 1 {
		t.Fatalf("queued = %d, want 1", o.PendingInjections())
	}
	if !o.input.synthetic[1] || !o.input.pointers[1].down {
		t.Error("touch slot 1 should be held by the injected touch")
	}
	o.processInjectedInput()
	if o.input.synthetic[1] || o.input.pointers[1].down {
		t.Error("touch slot 1 should be released")
	}
	if o.processInjectedInput() {
		t.Error("empty queue reported an event")
	}
}

func TestInjectedTouchEndGoesToStartLeaf(t *testing.T) {
	o, clock := newTestOverlay(t, nil)
	stepFrames(t, o, clock, 1)

	top := o.Leaves()[len(o.Leaves())-1]
	var got []LeafEvent
	record := func(ctx PointerContext) { got = append(got, ctx.Event) }
	top.OnTouchStart = record
	top.OnTouchEnd = record

	x, y := leafCentre(top)
	o.InjectTouchStart(2, x, y)
	o.processInjectedInput()
	// The finger ends far away; the end still belongs to the start leaf.
	o.input.pointers[2].x, o.input.pointers[2].y = -1000, -1000
	o.InjectTouchEnd(2)
	o.processInjectedInput()

	if len(got) != 2 || got[0] != LeafTouchStart || got[1] != LeafTouchEnd {
		t.Errorf("events = %v, want [touchstart touchend]", got)
	}
}

func TestInjectedTouchSlotSkippedByRealTouches(t *testing.T) {
	var in input
	in.synthetic[1] = true
	if slot := in.touchSlot(7); slot != 2 {
		t.Errorf("touchSlot = %d, want 2", slot)
	}
	if slot := in.touchSlot(7); slot != 2 {
		t.Errorf("repeat touchSlot = %d, want 2", slot)
	}
}

func TestHoverEnterLeaveOrder(t *testing.T) {
	o, clock := newTestOverlay(t, nil)
	stepFrames(t, o, clock, 1)

	top := o.Leaves()[len(o.Leaves())-1]
	var got []LeafEvent
	record := func(ctx PointerContext) { got = append(got, ctx.Event) }
	top.OnPointerEnter = record
	top.OnPointerLeave = record

	x, y := leafCentre(top)
	o.processHover(0, x, y)
	o.processHover(0, x, y)
	o.processHover(0, -1000, -1000)

	if len(got) != 2 || got[0] != LeafPointerEnter || got[1] != LeafPointerLeave {
		t.Errorf("events = %v, want [mouseenter mouseleave]", got)
	}
}
