// Package drift simulates images drifting across a viewport.
//
// An [Engine] owns a fixed-length slice of [Particle] values. Once per
// rendered frame the host calls [Engine.Update] with a monotonic timestamp in
// milliseconds and the current [View]. Each particle with both handles
// attached is advanced along a direction derived from its angle, respawned
// when it leaves the trailing edges of the viewport, and painted through its
// [Asset] and [Container] handles.
//
// The engine never reads the environment. Viewport size and breakpoint
// classification arrive with every frame, time comes from a [Clock] driven by
// a [Scheduler], and interaction reaches the engine as pause and resume
// commands that are applied at the start of the next frame:
//
//	eng := drift.New(drift.Options{Motion: drift.DefaultMotion})
//	eng.Init(21, drift.Viewport{Width: 1280, Height: 720})
//	for i := range eng.Len() {
//		eng.Attach(i, assets[i], containers[i])
//	}
//
//	sched := drift.NewScheduler(drift.NewRealClock(), func(now float64) {
//		eng.Update(now, drift.DefaultBreakpoint.View(vp))
//	})
//	sched.Start()
//	// host loop: sched.Tick() once per display frame
//
// Respawn fade-backs run as cancellable [Task] values on the engine's own
// frame clock, so [Engine.Stop] leaves nothing pending.
package drift
