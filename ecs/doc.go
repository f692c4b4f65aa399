// Package ecs provides ECS adapters for sprig's interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges sprig interaction
// events (pointer, drag, focus, key, screen switch) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	app.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
