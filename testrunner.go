package lastleaf

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// scriptAction is a parsed step kind.
type scriptAction uint8

const (
	actMove scriptAction = iota
	actTouch
	actRelease
	actTap
	actWait
	actScreenshot
	actInteractive
	actCount
	actExpect
)

var scriptActions = map[string]scriptAction{
	"move":        actMove,
	"touch":       actTouch,
	"release":     actRelease,
	"tap":         actTap,
	"wait":        actWait,
	"screenshot":  actScreenshot,
	"interactive": actInteractive,
	"count":       actCount,
	"expect":      actExpect,
}

// scriptStep is one line of a script as written in JSON.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	ID      int     `json:"id,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Enabled bool    `json:"enabled,omitempty"`
	Count   int     `json:"count,omitempty"`
	Paused  []int   `json:"paused,omitempty"`

	kind scriptAction
}

// TestRunner plays a JSON script against an Overlay, one step per frame:
// pointer and touch injection, waits, screenshots, runtime toggles and
// checks on which leaves are paused.
//
//	{"steps": [
//	  {"action": "wait", "frames": 30},
//	  {"action": "move", "x": 400, "y": 300},
//	  {"action": "expect", "paused": [3]},
//	  {"action": "screenshot", "label": "hovered"},
//	  {"action": "interactive", "enabled": false},
//	  {"action": "count", "count": 12}
//	], "exit": true}
//
// With "exit" set the game loop stops once the script ends.
type TestRunner struct {
	steps    []scriptStep
	next     int
	wait     int
	exit     bool
	done     bool
	failures []string
}

// LoadTestScript parses and validates a JSON script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
		Exit  bool         `json:"exit"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		kind, ok := scriptActions[st.Action]
		if !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		st.kind = kind
	}
	return &TestRunner{steps: script.Steps, exit: script.Exit}, nil
}

// SetTestRunner attaches a runner. It steps from Overlay.Update before input
// is read each frame.
func (o *Overlay) SetTestRunner(runner *TestRunner) {
	o.testRunner = runner
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of expect steps that did not hold.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step runs at most one step. Injected input must drain before the next
// step so every step sees the result of the previous one.
func (r *TestRunner) step(o *Overlay) {
	switch {
	case r.done, len(o.input.injectQueue) > 0:
		return
	case r.wait > 0:
		r.wait--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	i := r.next
	st := r.steps[i]
	r.next++

	switch st.kind {
	case actMove:
		o.InjectMove(st.X, st.Y)
	case actTouch:
		o.InjectTouchStart(st.ID, st.X, st.Y)
	case actRelease:
		o.InjectTouchEnd(st.ID)
	case actTap:
		o.InjectTap(st.X, st.Y)
	case actWait:
		r.wait = max(st.Frames-1, 0)
	case actScreenshot:
		o.Screenshot(st.Label)
	case actInteractive:
		o.SetInteractive(st.Enabled)
	case actCount:
		o.SetCount(st.Count)
	case actExpect:
		r.expect(o, i, st)
	}

	if r.next == len(r.steps) && r.wait == 0 && len(o.input.injectQueue) == 0 {
		r.done = true
	}
}

// expect compares the paused leaves with the step's list.
func (r *TestRunner) expect(o *Overlay, i int, st scriptStep) {
	got := o.pausedLeaves()
	want := slices.Clone(st.Paused)
	slices.Sort(want)
	if slices.Equal(got, want) {
		return
	}
	msg := fmt.Sprintf("step %d: paused = %v, want %v", i, got, want)
	r.failures = append(r.failures, msg)
	_, _ = fmt.Fprintf(os.Stderr, "[lastleaf] test script: %s\n", msg)
}
