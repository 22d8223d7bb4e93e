// Package ecs bridges drift engine events into a [Donburi] world.
//
// [NewDonburiStore] returns a drift.EventStore that publishes every engine
// event (pause, resume, respawn, fade) as a typed Donburi event. Subscribe
// to [DriftEventType] in your ECS systems to receive them.
//
// Usage:
//
//	overlay.EventStore = ecs.NewDonburiStore(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
