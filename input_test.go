package lastleaf

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stackedLeaves builds n 50x50 listening leaves all painted at (100, 100).
func stackedLeaves(n int) []*Leaf {
	leaves := make([]*Leaf, n)
	for i := range leaves {
		l := NewLeaf("leaf", i, nil)
		l.SetStyle(Size{Width: 50})
		l.Paint(100, 100, 0)
		l.OnPointerEnter = func(PointerContext) {}
		leaves[i] = l
	}
	return leaves
}

func TestHitTest_TopmostLeaf(t *testing.T) {
	o := &Overlay{leaves: stackedLeaves(3), leader: -1}
	if got := o.hitTest(120, 120); got != o.leaves[2] {
		t.Errorf("hitTest = %v, want leaf 2", got)
	}
}

func TestHitTest_Miss(t *testing.T) {
	o := &Overlay{leaves: stackedLeaves(2), leader: -1}
	if got := o.hitTest(10, 10); got != nil {
		t.Errorf("hitTest = %v, want nil", got)
	}
}

func TestHitTest_SkipsHiddenAndSilent(t *testing.T) {
	o := &Overlay{leaves: stackedLeaves(3), leader: -1}
	o.leaves[2].Visible = false
	o.leaves[1].ClearCallbacks()
	if got := o.hitTest(120, 120); got != o.leaves[0] {
		t.Errorf("hitTest = %v, want leaf 0", got)
	}
}

func TestHitTest_SkipsLeaderSlot(t *testing.T) {
	o := &Overlay{leaves: stackedLeaves(3), leader: 2}
	if got := o.hitTest(120, 120); got != o.leaves[1] {
		t.Errorf("hitTest = %v, want leaf 1", got)
	}
}

func TestHitTest_ContentBlocks(t *testing.T) {
	o := &Overlay{
		leaves:  stackedLeaves(1),
		leader:  -1,
		content: []Content{&blockingContent{}},
	}
	if got := o.hitTest(120, 120); got != nil {
		t.Errorf("hitTest = %v, want nil under blocking content", got)
	}
}

func TestTouchSlotsFill(t *testing.T) {
	var in input
	for i := 1; i < maxPointers; i++ {
		if slot := in.touchSlot(ebiten.TouchID(100 + i)); slot != i {
			t.Fatalf("touchSlot #%d = %d", i, slot)
		}
	}
	if slot := in.touchSlot(999); slot != -1 {
		t.Errorf("touchSlot when full = %d, want -1", slot)
	}
}

func TestTouchEndGoesToStartLeaf(t *testing.T) {
	o := &Overlay{leaves: stackedLeaves(1), leader: -1}
	l := o.leaves[0]
	var got []LeafEvent
	l.OnTouchStart = func(ctx PointerContext) { got = append(got, ctx.Event) }
	l.OnTouchEnd = func(ctx PointerContext) { got = append(got, ctx.Event) }

	o.processTouch(1, 120, 120, true)
	o.processTouch(1, 500, 500, true)
	o.processTouch(1, 500, 500, false)

	if len(got) != 2 || got[0] != LeafTouchStart || got[1] != LeafTouchEnd {
		t.Errorf("events = %v, want [touchstart touchend]", got)
	}
	if o.input.pointers[1].down || o.input.pointers[1].touched != nil {
		t.Error("pointer state not cleared after touch end")
	}
}

func TestResetTargets(t *testing.T) {
	o := &Overlay{leaves: stackedLeaves(1), leader: -1}
	o.processHover(0, 120, 120)
	o.processTouch(2, 120, 120, true)
	if o.input.pointers[0].hover == nil || o.input.pointers[2].touched == nil {
		t.Fatal("targets not recorded")
	}
	o.input.resetTargets()
	if o.input.pointers[0].hover != nil || o.input.pointers[2].touched != nil {
		t.Error("targets survived resetTargets")
	}
}
