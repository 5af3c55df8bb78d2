// Package ecs provides ECS adapters for firework's burst events.
//
// The primary adapter is [NewDonburiSink], which publishes every burst into a
// [Donburi] world as a typed event. Subscribe to [BurstEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	effect := firework.NewEffect(canvas, firework.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
