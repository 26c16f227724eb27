// Package grove is a tiny 2D prototype built on [Ebitengine]: an actor walks
// around the window and plants trees where it stands.
//
// The package holds the frame-driven domain model and nothing that needs a
// window. The [github.com/phanxgames/grove/play] package adapts it to an
// ebiten game loop.
//
// # Quick start
//
//	cfg := grove.DefaultConfig()
//	world := grove.NewWorld(cfg, nil)
//	world.SpawnActor(grove.Vec2{})
//	if err := play.Run(world, cfg, nil); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame model
//
// Each frame the host passes an explicit [Input] snapshot, the elapsed time
// in seconds and the current [Viewport] into [World.Update]. The world runs
// its steps in a fixed order:
//
//  1. [Locomotion.Move] integrates the held directions into the actor's
//     position.
//  2. [Locomotion.Confine] clamps the actor into the viewport bounds.
//  3. [Spawner.Request] publishes a [PlantRequest] on a rising edge of
//     [ActionPlant].
//  4. Plant requests are processed into tree entities.
//  5. Fade-in tweens on new trees advance.
//
// Coordinates are Y-up with the origin at the center of the viewport.
//
// # Entities
//
// Entities live in a [Donburi] world. The actor is held as an explicit
// handle instead of being queried every frame, and a world has at most one.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package grove
