// Package cosmodrift is a real-time animated space flythrough for [Ebitengine].
//
// Cosmodrift renders a procedurally generated scene of celestial bodies — a
// sun, planets, moons, rings, nebulae, and a starfield — while a camera
// travels a smooth closed spline through the scene. Transient effects
// (shooting stars, a one-shot supernova with an expanding shockwave) are
// simulated frame by frame from fixed-capacity particle pools.
//
// # Quick start
//
// Build a journey path, construct a Director, and drive it once per frame:
//
//	path := cosmodrift.NewPath()
//	for _, p := range waypoints {
//		path.AddPoint(p)
//	}
//	d := cosmodrift.NewDirector(cosmodrift.DirectorConfig{Path: path})
//	// once per display refresh:
//	d.Tick()
//
// For full control, implement [ebiten.Game] yourself and call [Director.Tick]
// from Update; see demos/flythrough for a complete host.
//
// # Architecture
//
// The [Director] is the single per-frame driver. It owns the session clock,
// the random source, the camera, and every animated system; all mutation
// happens inside a tick on one logical thread. Effects are never attached to
// visual objects — each animated entity is registered with exactly one
// owning system so update order is deterministic and testable.
//
// [Ebitengine]: https://ebitengine.org
package cosmodrift
