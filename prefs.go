package lastleaf

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage keys for gdata.
const (
	prefsObject   = "prefs"
	prefsProperty = "overlay"
)

// Prefs are the user-facing toggles that survive restarts. Motion state is
// never persisted.
type Prefs struct {
	Interactive bool `yaml:"interactive"`
	Count       int  `yaml:"count"`
}

// PrefsFromConfig returns the toggles currently set in cfg.
func PrefsFromConfig(cfg *Config) Prefs {
	return Prefs{Interactive: cfg.Interactive, Count: cfg.Count}
}

// Apply copies the toggles onto cfg.
func (p Prefs) Apply(cfg *Config) {
	cfg.Interactive = p.Interactive
	cfg.Count = max(p.Count, 0)
}

// PrefsStore loads and saves Prefs through a gdata manager. A nil manager
// keeps the prefs in memory only.
type PrefsStore struct {
	manager  *gdata.Manager
	defaults Prefs
	prefs    Prefs
}

// OpenPrefs opens the per-user data directory for appName.
func OpenPrefs(appName string, defaults Prefs) (*PrefsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open prefs: %w", err)
	}
	return NewPrefsStore(m, defaults)
}

// NewPrefsStore creates a store and loads any saved prefs. A load error is
// returned alongside a usable store holding the defaults.
func NewPrefsStore(m *gdata.Manager, defaults Prefs) (*PrefsStore, error) {
	s := &PrefsStore{manager: m, defaults: defaults, prefs: defaults}
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Load reads the saved prefs. Missing data leaves the defaults in place.
func (s *PrefsStore) Load() error {
	s.prefs = s.defaults
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	loaded := s.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal prefs: %w", err)
	}
	s.prefs = loaded
	return nil
}

// Save writes the current prefs. Without a manager it does nothing.
func (s *PrefsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// Prefs returns the current prefs.
func (s *PrefsStore) Prefs() Prefs {
	return s.prefs
}

// Set replaces the current prefs in memory. Call Save to persist.
func (s *PrefsStore) Set(p Prefs) {
	s.prefs = p
}

// Persistent reports whether prefs are written to disk.
func (s *PrefsStore) Persistent() bool {
	return s.manager != nil
}
