package lastleaf

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/phanxgames/lastleaf/drift"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		buf.ReadFrom(r)
		done <- buf.String()
	}()
	fn()
	w.Close()
	os.Stderr = oldStderr
	return <-done
}

func TestDebugModeLogsStats(t *testing.T) {
	out := captureStderr(t, func() {
		clock := &drift.ManualClock{}
		o := NewOverlay(nil, nil)
		o.Clock = clock
		o.SetDebugMode(true)
		o.SetViewport(800, 600)
		o.Start()
		stepFrames(t, o, clock, debugLogInterval)
		o.Close()
	})
	for _, want := range []string{"[lastleaf] started: 7 leaves", "[lastleaf] frame 120", "leaves: 7", "[lastleaf] closed"} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr missing %q, got:\n%s", want, out)
		}
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	out := captureStderr(t, func() {
		o, clock := newTestOverlay(t, nil)
		stepFrames(t, o, clock, debugLogInterval)
		o.Close()
	})
	if strings.Contains(out, "[lastleaf]") {
		t.Errorf("unexpected debug output: %q", out)
	}
}

func TestDebugConfigEnablesLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	if o := NewOverlay(cfg, nil); !o.debug {
		t.Error("cfg.Debug should enable debug mode")
	}
}
