// Package ecs provides ECS adapters for intrographics' interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges dispatched
// interactions (clicks, drags, key presses, button presses) into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] in
// your ECS systems to receive them. [Track] attaches shapes to entities so
// systems can query them alongside their own components.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	manager.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
