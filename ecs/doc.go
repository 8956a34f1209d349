// Package ecs forwards trigger-zone state changes into an ECS world.
//
// A zone engine emits 'in', 'out' and 'interact' for each zone. Systems that
// live in a [Donburi] world rather than behind zone callbacks can receive the
// same changes as [areas.ZoneEvent] values: plug the store returned by
// [NewDonburiStore] into the engine, then read [ZoneEventType] from a system.
//
//	engine.SetEntityStore(ecs.NewDonburiStore(world))
//	ecs.ZoneEventType.Subscribe(world, func(w donburi.World, ev areas.ZoneEvent) {
//		if ev.Kind == areas.EventInteract && ev.Name == "garage" {
//			openGarage(w)
//		}
//	})
//
// Events carry the zone handle, name, kind and the detector that produced
// them. They queue inside the world until the game calls ProcessEvents.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
