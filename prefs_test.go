package lastleaf

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func newTestGdata(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: name})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return m
}

func TestPrefsStoreMemoryOnly(t *testing.T) {
	defaults := Prefs{Interactive: true, Count: 7}
	s, err := NewPrefsStore(nil, defaults)
	if err != nil {
		t.Fatalf("NewPrefsStore: %v", err)
	}
	if s.Persistent() {
		t.Error("nil manager should not persist")
	}
	if s.Prefs() != defaults {
		t.Errorf("Prefs = %+v, want %+v", s.Prefs(), defaults)
	}
	s.Set(Prefs{Count: 2})
	if err := s.Save(); err != nil {
		t.Errorf("Save without a manager: %v", err)
	}
	if s.Prefs().Count != 2 {
		t.Error("Set not kept in memory")
	}
}

func TestPrefsStoreRoundTrip(t *testing.T) {
	m := newTestGdata(t, "lastleaf_prefs_test")
	defaults := Prefs{Interactive: true, Count: 7}

	s1, err := NewPrefsStore(m, defaults)
	if err != nil {
		t.Fatalf("NewPrefsStore: %v", err)
	}
	if s1.Prefs() != defaults {
		t.Fatalf("fresh store = %+v, want defaults", s1.Prefs())
	}
	s1.Set(Prefs{Interactive: false, Count: 12})
	if err := s1.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2, err := NewPrefsStore(m, defaults)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := s2.Prefs(); got.Interactive || got.Count != 12 {
		t.Errorf("reloaded = %+v, want {false 12}", got)
	}
}

func TestPrefsStoreCorruptData(t *testing.T) {
	m := newTestGdata(t, "lastleaf_prefs_corrupt")
	if err := m.SaveObjectProp(prefsObject, prefsProperty, []byte("count: [")); err != nil {
		t.Fatal(err)
	}
	defaults := Prefs{Interactive: true, Count: 7}
	s, err := NewPrefsStore(m, defaults)
	if err == nil {
		t.Error("corrupt prefs should report an error")
	}
	if s == nil || s.Prefs() != defaults {
		t.Error("store should fall back to defaults")
	}
}

func TestPrefsApply(t *testing.T) {
	cfg := DefaultConfig()
	Prefs{Interactive: false, Count: -3}.Apply(cfg)
	if cfg.Interactive || cfg.Count != 0 {
		t.Errorf("applied cfg = interactive %v count %d", cfg.Interactive, cfg.Count)
	}
	if got := PrefsFromConfig(cfg); got != (Prefs{Interactive: false, Count: 0}) {
		t.Errorf("PrefsFromConfig = %+v", got)
	}
}
