// Package areas is a trigger-zone engine for [Ebitengine] scenes.
//
// A zone is a rectangle on the ground plane that feature modules (popups,
// texture swaps, sound cues, labels) subscribe to. Two detectors drive every
// zone through the same state machine:
//
//   - the [ProximityDetector] enters a zone when the tracked agent comes
//     within [Config.InteractionDistance] of its centre and leaves it when
//     the agent moves away;
//   - the [PointerPicker] ray-casts the pointer against each zone's
//     [HitMesh] and owns the single hovered zone.
//
// Each zone emits 'in', 'out' and 'interact' events. The proximity path
// emits 'interact' at most once per engagement, when the [InputGate] reports
// the interact action; a pointer press re-resolves the hover at the press
// position and interacts with the zone under it every time.
//
// # Quick start
//
//	engine, err := areas.NewEngine(areas.DefaultConfig())
//	if err != nil { ... }
//	h, _ := engine.Add(areas.Definition{
//		Name:        "garage",
//		Position:    areas.Pos(10, 4),
//		HalfExtents: areas.Pos(2, 2),
//	})
//	z, _ := engine.Zone(h)
//	z.OnInteract(func(ev areas.Event) { openGaragePopup() })
//
//	engine.SetAgent(areas.AgentFunc(func() areas.Vec2 { return car.Position() }))
//	engine.SetCamera(camera)
//	engine.SetViewport(areas.Rect{Width: 1280, Height: 720})
//
// Then call [Engine.Update] once per tick from your [ebiten.Game] Update.
//
// # Tick order
//
// Pointer and touch events only mark the picker dirty. Each Update then
// latches the interact action, resolves at most one ray-cast, and finally
// evaluates every zone against the agent. Everything runs on the game
// goroutine; no locks are taken.
//
// # Ownership
//
// A zone engaged by the pointer is [PointerOwned]: proximity neither enters
// nor exits it until the pointer lets go, which avoids a second 'in' when the
// agent is also nearby.
//
// [Ebitengine]: https://ebitengine.org
package areas
