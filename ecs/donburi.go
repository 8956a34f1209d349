package ecs

import (
	"github.com/phanxgames/areas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ZoneEventType carries every zone transition published by a store from
// NewDonburiStore, in emission order.
var ZoneEventType = events.NewEventType[areas.ZoneEvent]()

// worldStore publishes zone transitions into one Donburi world.
type worldStore struct {
	world donburi.World
}

// NewDonburiStore returns an areas.EntityStore that queues each zone
// transition on ZoneEventType in world. The engine calls it after the zone's
// own callbacks have run.
func NewDonburiStore(world donburi.World) areas.EntityStore {
	return &worldStore{world: world}
}

// EmitEvent queues ev; subscribers see it on the next ProcessEvents.
func (s *worldStore) EmitEvent(ev areas.ZoneEvent) {
	ZoneEventType.Publish(s.world, ev)
}
