// Package firework renders a click-triggered particle firework on top of
// [Ebitengine].
//
// Every click spawns a burst of [BurstSize] particles sharing one color from
// [Palette]. Each tick the effect dims the whole canvas with a translucent
// black overlay, drops the particles that have faded out, then moves and
// draws the rest. Because the canvas is never fully cleared, the dimmed
// remains of earlier ticks form motion trails.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a resizable window
// and game loop for you:
//
//	firework.Run(firework.RunConfig{
//		Title: "Fireworks", Width: 800, Height: 600,
//	})
//
// For full control, mount an [Effect] on your own [Canvas], [FrameScheduler]
// and [Viewport]:
//
//	canvas := firework.NewSurface(800, 600)
//	frames := firework.NewFrameQueue()
//	vp := firework.NewViewport(800, 600)
//
//	effect := firework.NewEffect(canvas)
//	if err := effect.Mount(frames, vp); err != nil {
//		log.Fatal(err)
//	}
//	defer effect.Teardown()
//
//	// once per update:
//	frames.Flush()
//
// # Physics
//
// A particle starts with alpha 1 and a velocity drawn from [-4, 4) on each
// axis. Every update multiplies the velocity by [Friction], adds [Gravity] to
// the vertical component, moves by the new velocity and subtracts [Decay]
// from alpha. A particle lives exactly 100 updates.
//
// # ECS integration
//
// Bursts can be forwarded to a [Donburi] world through the adapter in
// firework/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package firework
