package lastleaf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/lastleaf/drift"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Count != 7 {
		t.Errorf("Count = %d, want 7", cfg.Count)
	}
	if !cfg.Interactive {
		t.Error("Interactive should default to true")
	}
	if cfg.Motion != drift.DefaultMotion {
		t.Errorf("Motion = %+v, want %+v", cfg.Motion, drift.DefaultMotion)
	}
	if cfg.Container.Background != ColorLightBlue || !cfg.Container.Clip {
		t.Errorf("Container = %+v", cfg.Container)
	}
	small, _ := cfg.Leaf.For(drift.ProfileSmall)
	large, _ := cfg.Leaf.For(drift.ProfileLarge)
	if small.Width != 75 || large.Width != 100 || small.Height != 0 {
		t.Errorf("leaf styles = %+v / %+v, want 75 / 100 wide with auto height", small, large)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
count: 21
assetPath: leaf.png
container:
  background: "#102030"
motion:
  small: 50
interactive: false
swing:
  enabled: true
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Count != 21 || cfg.AssetPath != "leaf.png" || cfg.Interactive {
		t.Errorf("scalars not applied: %+v", cfg)
	}
	if cfg.Container.Background.Hex() != "#102030" {
		t.Errorf("background = %s, want #102030", cfg.Container.Background.Hex())
	}
	if !cfg.Container.Clip {
		t.Error("absent clip key should keep the default")
	}
	if cfg.Motion.Small != 50 || cfg.Motion.Large != 10 {
		t.Errorf("motion = %+v, want {50 10}", cfg.Motion)
	}
	if !cfg.Swing.Enabled || cfg.Swing.Amplitude != DefaultSwingAmp {
		t.Errorf("swing = %+v", cfg.Swing)
	}
}

func TestParseConfigSingleLeafStyle(t *testing.T) {
	cfg, err := ParseConfig([]byte("leaf:\n  all: {width: 60, height: 30}\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	for _, p := range []drift.Profile{drift.ProfileSmall, drift.ProfileLarge} {
		s, ok := cfg.Leaf.For(p)
		if !ok || s.Width != 60 || s.Height != 30 {
			t.Errorf("%s style = %+v (%v), want 60x30", p, s, ok)
		}
	}
}

func TestLeafStylesMissingEntry(t *testing.T) {
	styles := LeafStyles{Large: &Size{Width: 100}}
	if _, ok := styles.For(drift.ProfileSmall); ok {
		t.Error("missing small style should report false")
	}
	if s, ok := styles.For(drift.ProfileLarge); !ok || s.Width != 100 {
		t.Errorf("large style = %+v (%v)", s, ok)
	}
}

func TestParseConfigNormalizes(t *testing.T) {
	cfg, err := ParseConfig([]byte("count: -4\nbreakpoint: 0\nswing: {amplitude: -1, period: 0}\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Count != 0 {
		t.Errorf("Count = %d, want 0", cfg.Count)
	}
	if cfg.Breakpoint != 767 {
		t.Errorf("Breakpoint = %v, want 767", cfg.Breakpoint)
	}
	if cfg.Swing.Amplitude != DefaultSwingAmp || cfg.Swing.Period != DefaultSwingPeriod {
		t.Errorf("swing = %+v", cfg.Swing)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "count: [1"},
		{"bad color", "container: {background: nope}"},
		{"wrong type", "count: many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaves.yaml")
	if err := os.WriteFile(path, []byte("count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Count != 3 {
		t.Errorf("Count = %d, want 3", cfg.Count)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 12
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if got.Count != 12 || got.Container.Background != cfg.Container.Background {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestConfigClassifier(t *testing.T) {
	cfg := DefaultConfig()
	c := cfg.Classifier()
	if c.Classify(drift.Viewport{Width: 767, Height: 500}) != drift.ProfileSmall {
		t.Error("767 wide should be small")
	}
	if c.Classify(drift.Viewport{Width: 768, Height: 500}) != drift.ProfileLarge {
		t.Error("768 wide should be large")
	}
}
