package drift

// Asset is the paintable image of a particle, supplied by the presentation
// layer. Positions are in viewport pixels and angles in degrees.
type Asset interface {
	// RenderedHeight reports the image's current on-screen height. Respawned
	// particles restart at this y coordinate.
	RenderedHeight() float64
	// Paint translates the image by (x, y) and then rotates it by angle
	// degrees about its centre.
	Paint(x, y, angle float64)
}

// Container wraps an Asset and carries its opacity.
type Container interface {
	SetOpacity(alpha float64)
}

// Particle is one drifting element. Particles are identified by their index in
// the engine; the index is stable until the next Engine.Init.
type Particle struct {
	X, Y float64
	// Angle is in degrees and grows without bound while unpaused; only its
	// sine and cosine are ever used.
	Angle float64
	// LastUpdate is the frame time, in ms, of the last frame this particle
	// was advanced on.
	LastUpdate float64
	Paused     bool
	// Opacity is the value painted on the last frame.
	Opacity float64

	asset     Asset
	container Container
	fade      fade
}

// Attached reports whether both handles are present. Unattached particles are
// skipped by Update.
func (p Particle) Attached() bool {
	return p.asset != nil && p.container != nil
}

// Fading reports whether a respawn blink or fade-back is in progress.
func (p Particle) Fading() bool {
	return p.fade.phase != fadeIdle
}

// FadePending reports whether a delayed fade-back is still scheduled.
func (p Particle) FadePending() bool {
	return p.fade.task.Pending()
}
