// Package lastleaf is a decorative overlay of drifting leaves for
// [Ebitengine].
//
// Leaves wander across the window along slowly turning headings, blink out
// when they leave through the right or bottom edge, and fade back in from
// one side. Hovering or touching a leaf pauses it. Caller content such as a
// [Caption] is drawn above the leaves and only blocks the pointer where it
// says so.
//
// The motion itself lives in the drift subpackage and has no rendering
// dependency. This package supplies the leaves as drift handles, routes
// pointer and touch input to the engine's pause commands, and runs the
// frame loop.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := lastleaf.DefaultConfig()
//	img, _ := lastleaf.LoadImage(cfg.AssetPath)
//	o := lastleaf.NewOverlay(cfg, img, lastleaf.NewCaption(cfg.Caption))
//	lastleaf.Run(o, lastleaf.RunConfig{Title: "The Last Leaf"})
//
// [Overlay] implements [ebiten.Game], so it can also be embedded in an
// existing game by forwarding Update, Draw and Layout.
//
// # Configuration
//
// [Config] is loaded from YAML with [LoadConfig]; absent keys keep the values
// from [DefaultConfig]:
//
//	count: 21
//	assetPath: leaf.png
//	container: {background: "#add8e6", clip: true}
//	leaf:
//	  small: {width: 75}
//	  large: {width: 100}
//	motion: {small: 35, large: 10}
//	interactive: true
//	swing: {enabled: true, x: 0.5, y: 0.2, amplitude: 25, period: 3}
//	caption: {text: "The Last Leaf", color: "#333333"}
//
// The interactivity toggle and count can be persisted per user with
// [PrefsStore].
//
// # Swing
//
// With swing enabled, the last leaf is taken out of the drift and rocked on
// its own eased timeline. Hovering it pauses every leaf and the swing
// together.
//
// # Automated checks
//
// [Overlay.InjectMove], [Overlay.InjectTouchStart] and [Overlay.InjectTouchEnd]
// queue synthetic pointer events, consumed one per frame. A [TestRunner]
// plays a JSON script of such events and [Overlay.Screenshot] captures.
//
// [Ebitengine]: https://ebitengine.org
package lastleaf
