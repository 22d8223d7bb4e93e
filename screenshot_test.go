package lastleaf

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-pause", "after-pause"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotRecordsOverlayState(t *testing.T) {
	o, clock := newTestOverlay(t, nil)
	stepFrames(t, o, clock, 2)
	o.Screenshot("a")
	o.Screenshot("b/c")
	if len(o.shots) != 2 {
		t.Fatalf("queued = %d, want 2", len(o.shots))
	}
	s := o.shots[1]
	if s.Frame != 2 || s.Profile != "large" || s.Leaves != DefaultCount || len(s.Paused) != 0 {
		t.Errorf("shot = %+v", s)
	}
	if got := s.filename(); got != "f000002_large_b_c" {
		t.Errorf("filename = %q, want f000002_large_b_c", got)
	}
}

func TestWriteShot(t *testing.T) {
	dir := t.TempDir()
	s := shot{Label: "hover", Frame: 7, Profile: "small", Leaves: 3, Paused: []int{1}}
	if err := writeShot(dir, s, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("writeShot: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "f000007_small_hover.png")); err != nil {
		t.Errorf("png missing: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "f000007_small_hover.yaml"))
	if err != nil {
		t.Fatalf("yaml missing: %v", err)
	}
	var back shot
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Frame != 7 || len(back.Paused) != 1 || back.Paused[0] != 1 {
		t.Errorf("sidecar = %+v", back)
	}
}

func TestStraightAlpha(t *testing.T) {
	img := straightAlpha([]byte{64, 32, 0, 128, 10, 20, 30, 255}, 2, 1)
	if got := img.Pix[:4]; got[0] != 127 || got[1] != 63 || got[2] != 0 || got[3] != 128 {
		t.Errorf("half-alpha pixel = %v, want [127 63 0 128]", got)
	}
	if got := img.Pix[4:8]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("opaque pixel = %v, want unchanged", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("writing into a missing directory should fail")
	}
}
