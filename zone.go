package areas

import (
	"fmt"
)

// Event is delivered to zone subscribers.
type Event struct {
	Kind   EventKind
	Zone   *Zone
	Source EventSource
}

type zoneHandler struct {
	id uint32
	fn func(Event)
}

// CallbackHandle allows removing a registered zone callback.
type CallbackHandle struct {
	id   uint32
	zone *Zone
	kind EventKind
}

// Remove unregisters this callback so it no longer fires. Removing during
// dispatch takes effect from the next emission.
func (h CallbackHandle) Remove() {
	if h.zone == nil || h.kind >= eventKindCount {
		return
	}
	s := h.zone.handlers[h.kind]
	for i := range s {
		if s[i].id == h.id {
			// Copy so an in-flight dispatch keeps iterating its own snapshot.
			next := make([]zoneHandler, 0, len(s)-1)
			next = append(next, s[:i]...)
			next = append(next, s[i+1:]...)
			h.zone.handlers[h.kind] = next
			return
		}
	}
}

// Zone is a single trigger region. Zones are created by Registry.Add and live
// for the lifetime of the registry.
//
// Position and HalfExtents describe an axis-aligned rectangle on the ground
// plane. Agent proximity only uses the centre distance; the extents size the
// default pickable proxy.
type Zone struct {
	handle      ZoneHandle
	name        string
	position    Vec2
	halfExtents Vec2
	hitMesh     HitMesh

	interactable bool
	active       bool

	isIn        bool
	didInteract bool
	owner       Ownership

	// proximityEnabled is the creation-time snapshot restored whenever the
	// pointer releases the zone.
	proximityEnabled bool

	handlers [eventKindCount][]zoneHandler
	nextID   uint32

	reg *Registry

	// UserData is an arbitrary value feature modules can attach to the zone.
	UserData any
}

// Handle returns the stable handle assigned at registration.
func (z *Zone) Handle() ZoneHandle { return z.handle }

// Name returns the zone's name. Names are informational and need not be unique.
func (z *Zone) Name() string { return z.name }

// Position returns the zone centre on the ground plane.
func (z *Zone) Position() Vec2 { return z.position }

// HalfExtents returns the rectangle half-width and half-height.
func (z *Zone) HalfExtents() Vec2 { return z.halfExtents }

// HitMesh returns the pickable proxy used by the pointer picker.
func (z *Zone) HitMesh() HitMesh { return z.hitMesh }

// Interactable reports whether the zone takes part in detection at all.
func (z *Zone) Interactable() bool { return z.interactable }

// Active reports whether the zone is currently evaluated.
func (z *Zone) Active() bool { return z.active }

// IsIn reports whether the zone is engaged by either detector.
func (z *Zone) IsIn() bool { return z.isIn }

// DidInteract reports whether the proximity interact has fired during the
// current engagement.
func (z *Zone) DidInteract() bool { return z.didInteract }

// Owner returns the detector currently holding the zone.
func (z *Zone) Owner() Ownership { return z.owner }

// TestsAgent reports whether agent proximity may currently move the zone
// between IN and OUT. It is false while the pointer owns the zone and for
// zones registered with proximity disabled.
func (z *Zone) TestsAgent() bool {
	return z.proximityEnabled && z.owner != PointerOwned
}

// State returns the zone's position in the OUT / IN / IN_INTERACTED machine.
func (z *Zone) State() ZoneState {
	switch {
	case !z.isIn:
		return StateOut
	case z.didInteract:
		return StateInInteracted
	default:
		return StateIn
	}
}

// eligible reports whether detectors should consider the zone this tick.
func (z *Zone) eligible() bool {
	return z.active && z.interactable
}

// On registers fn for the given event kind. Callbacks run synchronously in
// registration order.
func (z *Zone) On(kind EventKind, fn func(Event)) CallbackHandle {
	if kind >= eventKindCount || fn == nil {
		return CallbackHandle{}
	}
	z.nextID++
	id := z.nextID
	z.handlers[kind] = append(z.handlers[kind], zoneHandler{id: id, fn: fn})
	return CallbackHandle{id: id, zone: z, kind: kind}
}

// OnIn registers fn for 'in' events.
func (z *Zone) OnIn(fn func(Event)) CallbackHandle { return z.On(EventIn, fn) }

// OnOut registers fn for 'out' events.
func (z *Zone) OnOut(fn func(Event)) CallbackHandle { return z.On(EventOut, fn) }

// OnInteract registers fn for 'interact' events.
func (z *Zone) OnInteract(fn func(Event)) CallbackHandle { return z.On(EventInteract, fn) }

// Interact force-triggers an 'interact' event. It is not gated by
// DidInteract and does not set it, so every call is honoured. Inactive or
// non-interactable zones ignore the call.
func (z *Zone) Interact() {
	z.interact(SourceDirect)
}

func (z *Zone) interact(src EventSource) {
	if !z.eligible() {
		return
	}
	z.emit(EventInteract, src)
}

// Activate resumes evaluation of the zone.
func (z *Zone) Activate() {
	z.active = true
}

// Deactivate stops evaluation of the zone. The zone keeps its record; if it
// is engaged, the owning detector releases it with a single 'out' on the
// next tick.
func (z *Zone) Deactivate() {
	z.active = false
}

// enter moves the zone to IN under the given owner.
func (z *Zone) enter(owner Ownership, src EventSource) {
	z.owner = owner
	if z.isIn {
		return
	}
	z.isIn = true
	z.emit(EventIn, src)
}

// leave moves the zone to OUT and resets the interact latch.
func (z *Zone) leave(src EventSource) {
	z.owner = Unclaimed
	if !z.isIn {
		return
	}
	z.isIn = false
	z.didInteract = false
	z.emit(EventOut, src)
}

// emit runs every subscriber for kind, then forwards the event to the
// registry's entity store. A panicking subscriber is logged and skipped.
func (z *Zone) emit(kind EventKind, src EventSource) {
	ev := Event{Kind: kind, Zone: z, Source: src}
	for _, h := range z.handlers[kind] {
		z.dispatch(h, ev)
	}
	if z.reg != nil {
		z.reg.forward(ev)
	}
}

func (z *Zone) dispatch(h zoneHandler, ev Event) {
	defer func() {
		if r := recover(); r != nil && z.reg != nil {
			z.reg.logger.WithFields(zoneFields(z)).
				WithField("event", ev.Kind.String()).
				WithError(fmt.Errorf("areas: callback panic: %v", r)).
				Error("zone callback panicked")
		}
	}()
	h.fn(ev)
}
