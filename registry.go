package areas

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ZoneHandle is a stable reference to a registered zone.
//
// Bit layout (high to low):
//
//	[ Generation (32) | Index (32) ]
//
// The generation guards against stale references should slots ever be
// recycled. The zero handle never refers to a zone.
type ZoneHandle uint64

// NilZone is the zero handle.
const NilZone ZoneHandle = 0

const (
	handleIndexBits = 32
	handleIndexMask = (1 << handleIndexBits) - 1

	// firstGeneration is assigned to every slot; slots are never recycled.
	firstGeneration uint32 = 1
)

func packHandle(index, gen uint32) ZoneHandle {
	return ZoneHandle(uint64(gen)<<handleIndexBits | uint64(index))
}

// Index returns the arena slot of the handle.
func (h ZoneHandle) Index() uint32 { return uint32(uint64(h) & handleIndexMask) }

// Generation returns the slot generation the handle was issued with.
func (h ZoneHandle) Generation() uint32 { return uint32(uint64(h) >> handleIndexBits) }

// IsNil reports whether h is the zero handle.
func (h ZoneHandle) IsNil() bool { return h == NilZone }

func (h ZoneHandle) String() string {
	if h.IsNil() {
		return "zone(nil)"
	}
	return fmt.Sprintf("zone(%d:%d)", h.Index(), h.Generation())
}

// EntityStore is the interface for optional ECS integration. When set, every
// zone event is forwarded after the zone's own subscribers have run.
type EntityStore interface {
	EmitEvent(event ZoneEvent)
}

// ZoneEvent carries a zone event for the ECS bridge.
type ZoneEvent struct {
	Kind   EventKind
	Handle ZoneHandle
	Name   string
	Source EventSource
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for rejected definitions and callback
// panics. Defaults to logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// Registry owns every zone in insertion order. Zones are appended, never
// removed; Deactivate is the only way to stop evaluating one.
type Registry struct {
	zones  []*Zone
	logger logrus.FieldLogger
	store  EntityStore
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add validates def and appends a new zone. A definition without a position
// or half-extents is rejected with a *ConfigurationError, which is also
// logged; the registry is left unchanged.
//
// Overlapping or duplicate definitions produce independent zones.
func (r *Registry) Add(def Definition) (ZoneHandle, error) {
	if err := def.validate(); err != nil {
		r.logger.WithField("zone", def.Name).WithError(err).Warn("skip zone definition")
		return NilZone, err
	}

	index := uint32(len(r.zones))
	z := &Zone{
		handle:           packHandle(index, firstGeneration),
		name:             def.Name,
		position:         *def.Position,
		halfExtents:      *def.HalfExtents,
		hitMesh:          def.HitMesh,
		interactable:     boolOr(def.Interactable, true),
		active:           boolOr(def.Active, true),
		proximityEnabled: boolOr(def.TestAgent, true),
		owner:            Unclaimed,
		reg:              r,
		UserData:         def.UserData,
	}
	if z.hitMesh == nil {
		z.hitMesh = GroundRect(z.position, z.halfExtents, def.HitHeight)
	}
	r.zones = append(r.zones, z)

	r.logger.WithFields(zoneFields(z)).Debug("zone registered")
	return z.handle, nil
}

// AddAll registers each definition in order and returns the handles of the
// accepted ones. Rejected definitions are logged and skipped.
func (r *Registry) AddAll(defs []Definition) []ZoneHandle {
	handles := make([]ZoneHandle, 0, len(defs))
	for _, def := range defs {
		h, err := r.Add(def)
		if err != nil {
			continue
		}
		handles = append(handles, h)
	}
	return handles
}

// Zone resolves a handle. It returns false for the nil handle and for
// handles this registry did not issue.
func (r *Registry) Zone(h ZoneHandle) (*Zone, bool) {
	if h.IsNil() {
		return nil, false
	}
	i := h.Index()
	if int(i) >= len(r.zones) {
		return nil, false
	}
	z := r.zones[i]
	if z.handle != h {
		return nil, false
	}
	return z, true
}

// Activate resumes evaluation of the zone behind h.
func (r *Registry) Activate(h ZoneHandle) error {
	z, ok := r.Zone(h)
	if !ok {
		return fmt.Errorf("activate %s: %w", h, ErrStaleHandle)
	}
	z.Activate()
	return nil
}

// Deactivate stops evaluation of the zone behind h. See Zone.Deactivate.
func (r *Registry) Deactivate(h ZoneHandle) error {
	z, ok := r.Zone(h)
	if !ok {
		return fmt.Errorf("deactivate %s: %w", h, ErrStaleHandle)
	}
	z.Deactivate()
	return nil
}

// Len returns the number of registered zones.
func (r *Registry) Len() int { return len(r.zones) }

// Each calls fn for every zone in insertion order until fn returns false.
// Zones added during iteration are not visited.
func (r *Registry) Each(fn func(*Zone) bool) {
	zones := r.zones
	for _, z := range zones {
		if !fn(z) {
			return
		}
	}
}

// countEngaged returns the number of zones currently IN.
func (r *Registry) countEngaged() int {
	n := 0
	for _, z := range r.zones {
		if z.isIn {
			n++
		}
	}
	return n
}

// SetEntityStore sets the optional ECS bridge.
func (r *Registry) SetEntityStore(store EntityStore) {
	r.store = store
}

func (r *Registry) forward(ev Event) {
	if r.store == nil {
		return
	}
	r.store.EmitEvent(ZoneEvent{
		Kind:   ev.Kind,
		Handle: ev.Zone.handle,
		Name:   ev.Zone.name,
		Source: ev.Source,
	})
}

func zoneFields(z *Zone) logrus.Fields {
	return logrus.Fields{
		"zone":   z.name,
		"handle": z.handle.String(),
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
