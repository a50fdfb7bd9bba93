package ecs

import (
	ig "github.com/phanxgames/intrographics"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for intrographics
// interaction events. Subscribe to this in your ECS systems to receive
// clicks, drags, key presses and button presses.
var InteractionEventType = events.NewEventType[ig.InteractionEvent]()

// ShapeComponent links an entity to a shape.
var ShapeComponent = donburi.NewComponentType[ShapeData]()

// ShapeData is the value stored by ShapeComponent.
type ShapeData struct {
	Shape ig.Shape
}

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) ig.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event ig.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Track creates an entity carrying ShapeComponent for s, plus any extra
// components, and returns it.
func Track(world donburi.World, s ig.Shape, components ...component.IComponentType) donburi.Entity {
	cs := append([]component.IComponentType{ShapeComponent}, components...)
	e := world.Create(cs...)
	ShapeComponent.SetValue(world.Entry(e), ShapeData{Shape: s})
	return e
}

// Prune removes the entities whose shapes have been removed from their
// window, and returns how many were removed.
func Prune(world donburi.World) int {
	var stale []donburi.Entity
	ShapeComponent.Each(world, func(entry *donburi.Entry) {
		if s := ShapeComponent.Get(entry).Shape; s == nil || s.Deleted() {
			stale = append(stale, entry.Entity())
		}
	})
	for _, e := range stale {
		world.Remove(e)
	}
	return len(stale)
}
