// Package ecs provides ECS adapters for vista's engine events.
//
// The primary adapter is [NewDonburiStore], which bridges engine events
// (resize, offset, region hits, open/close, sequencing, launches) into a
// [Donburi] world as typed events. Subscribe to [EngineEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
