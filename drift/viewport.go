package drift

// Viewport is the visible area in pixels.
type Viewport struct {
	Width, Height float64
}

// Profile is the binary responsive classification of a viewport.
type Profile uint8

const (
	ProfileLarge Profile = iota // wider than the breakpoint
	ProfileSmall                // at or below the breakpoint
)

// String returns "small" or "large".
func (p Profile) String() string {
	if p == ProfileSmall {
		return "small"
	}
	return "large"
}

// Classifier maps a viewport to a profile. The presentation layer supplies one
// so that the engine never queries the display itself.
type Classifier interface {
	Classify(vp Viewport) Profile
}

// Breakpoint classifies viewports by width. Widths at or below MaxSmallWidth
// are ProfileSmall.
type Breakpoint struct {
	MaxSmallWidth float64
}

// DefaultBreakpoint matches a "(max-width: 767px)" media query.
var DefaultBreakpoint = Breakpoint{MaxSmallWidth: 767}

// Classify implements Classifier.
func (b Breakpoint) Classify(vp Viewport) Profile {
	if vp.Width <= b.MaxSmallWidth {
		return ProfileSmall
	}
	return ProfileLarge
}

// View bundles a viewport with the classifier's verdict for one frame.
func (b Breakpoint) View(vp Viewport) View {
	return View{Viewport: vp, Profile: b.Classify(vp)}
}

// View is the per-frame environment handed to Engine.Update.
type View struct {
	Viewport
	Profile Profile
}

// ClassifyView builds a View using any Classifier. A nil classifier falls back
// to DefaultBreakpoint.
func ClassifyView(c Classifier, vp Viewport) View {
	if c == nil {
		c = DefaultBreakpoint
	}
	return View{Viewport: vp, Profile: c.Classify(vp)}
}

// MotionProfile holds the displacement divisor for each profile. Larger values
// drift slower.
type MotionProfile struct {
	Small float64 `yaml:"small"`
	Large float64 `yaml:"large"`
}

// DefaultMotion is the divisor pair used when none is configured.
var DefaultMotion = MotionProfile{Small: 35, Large: 10}

// Divisor returns the divisor for p. Missing or non-positive entries fall back
// to the DefaultMotion value for that profile.
func (m MotionProfile) Divisor(p Profile) float64 {
	if p == ProfileSmall {
		if m.Small > 0 {
			return m.Small
		}
		return DefaultMotion.Small
	}
	if m.Large > 0 {
		return m.Large
	}
	return DefaultMotion.Large
}
