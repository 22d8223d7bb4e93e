package lastleaf

import (
	"fmt"
	"os"

	"github.com/phanxgames/lastleaf/drift"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultCount         = 7
	DefaultAssetPath     = "thelastleaf.png"
	DefaultSmallWidth    = 75
	DefaultLargeWidth    = 100
	DefaultSwingAmp      = 25.0
	DefaultSwingPeriod   = 3.0
	DefaultCaptionText   = "The Last Leaf"
	DefaultCaptionScale  = 2.0
	defaultMaxSmallWidth = 767
)

// Size is a leaf's on-screen size in pixels. A zero Height keeps the image's
// aspect ratio; a zero Width uses the image's natural width.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LeafStyles sizes the leaves either with one style for every profile (All)
// or with one style per breakpoint profile.
type LeafStyles struct {
	All   *Size `yaml:"all,omitempty"`
	Small *Size `yaml:"small,omitempty"`
	Large *Size `yaml:"large,omitempty"`
}

// For returns the style for profile p. All wins over the per-profile entries.
// A missing entry reports false and leaves are drawn at their natural size.
func (s LeafStyles) For(p drift.Profile) (Size, bool) {
	if s.All != nil {
		return *s.All, true
	}
	var sz *Size
	if p == drift.ProfileSmall {
		sz = s.Small
	} else {
		sz = s.Large
	}
	if sz == nil {
		return Size{}, false
	}
	return *sz, true
}

// ContainerStyle describes the wrapper the leaves drift in. Zero Width or
// Height fills the window.
type ContainerStyle struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background Color   `yaml:"background"`
	// Clip hides leaves outside the container.
	Clip bool `yaml:"clip"`
}

// SwingConfig configures the choreographed leaf. X and Y place its centre as
// fractions of the viewport. Amplitude is in degrees either side of upright
// and Period is the seconds one sweep takes.
type SwingConfig struct {
	Enabled   bool    `yaml:"enabled"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
}

// CaptionConfig configures the foreground caption. An empty Text disables it.
type CaptionConfig struct {
	Text  string  `yaml:"text"`
	Color Color   `yaml:"color"`
	Scale float64 `yaml:"scale"`
	// Block makes the caption swallow pointer events over its bounds.
	Block bool `yaml:"block"`
}

// Config is the full overlay configuration.
type Config struct {
	Count       int                 `yaml:"count"`
	AssetPath   string              `yaml:"assetPath"`
	Container   ContainerStyle      `yaml:"container"`
	Leaf        LeafStyles          `yaml:"leaf"`
	Motion      drift.MotionProfile `yaml:"motion"`
	Breakpoint  float64             `yaml:"breakpoint"`
	Interactive bool                `yaml:"interactive"`
	Swing       SwingConfig         `yaml:"swing"`
	Caption     CaptionConfig       `yaml:"caption"`
	Debug       bool                `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Count:     DefaultCount,
		AssetPath: DefaultAssetPath,
		Container: ContainerStyle{
			Background: ColorLightBlue,
			Clip:       true,
		},
		Leaf: LeafStyles{
			Small: &Size{Width: DefaultSmallWidth},
			Large: &Size{Width: DefaultLargeWidth},
		},
		Motion:      drift.DefaultMotion,
		Breakpoint:  defaultMaxSmallWidth,
		Interactive: true,
		Swing: SwingConfig{
			X:         0.5,
			Y:         0.2,
			Amplitude: DefaultSwingAmp,
			Period:    DefaultSwingPeriod,
		},
		Caption: CaptionConfig{
			Text:  DefaultCaptionText,
			Color: Color{0.2, 0.2, 0.2, 1},
			Scale: DefaultCaptionScale,
		},
	}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML onto DefaultConfig, so keys that are absent keep
// their defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Classifier returns the breakpoint classifier for this configuration.
func (c *Config) Classifier() drift.Classifier {
	return drift.Breakpoint{MaxSmallWidth: c.Breakpoint}
}

// normalize repairs values that would otherwise misbehave. Nothing here is an
// error: bad counts mean no leaves and bad numbers fall back to defaults.
func (c *Config) normalize() {
	if c.Count < 0 {
		c.Count = 0
	}
	if c.Breakpoint <= 0 {
		c.Breakpoint = defaultMaxSmallWidth
	}
	if c.Swing.Amplitude <= 0 {
		c.Swing.Amplitude = DefaultSwingAmp
	}
	if c.Swing.Period <= 0 {
		c.Swing.Period = DefaultSwingPeriod
	}
	if c.Caption.Scale <= 0 {
		c.Caption.Scale = DefaultCaptionScale
	}
	if c.Container.Width < 0 {
		c.Container.Width = 0
	}
	if c.Container.Height < 0 {
		c.Container.Height = 0
	}
}
