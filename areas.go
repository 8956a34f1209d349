package areas

import "math"

// Vec2 is a 2D vector on the ground plane. X and Y match the world X and Y
// axes; Z is up.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the planar Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Vec3 is a world-space vector used for rays and pickable proxies.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Rect is an axis-aligned rectangle in screen space. The origin is the
// top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Ray is a half-line in world space. Dir is expected to be unit length so
// that hit distances are comparable across proxies.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// EventKind identifies a zone state-change event.
type EventKind uint8

const (
	EventIn       EventKind = iota // zone became engaged (proximity enter or pointer hover)
	EventOut                       // zone was released; didInteract is reset
	EventInteract                  // interact action recognised while engaged, or a direct Interact call
	eventKindCount
)

// String returns the event name used in configuration and logs.
func (k EventKind) String() string {
	switch k {
	case EventIn:
		return "in"
	case EventOut:
		return "out"
	case EventInteract:
		return "interact"
	default:
		return "unknown"
	}
}

// EventSource identifies which detector produced an event.
type EventSource uint8

const (
	SourceProximity EventSource = iota // agent distance check
	SourcePointer                      // pointer ray-cast or click
	SourceDirect                       // programmatic Zone.Interact
)

// String returns a short name for logs.
func (s EventSource) String() string {
	switch s {
	case SourceProximity:
		return "proximity"
	case SourcePointer:
		return "pointer"
	case SourceDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// Ownership records which detector currently holds a zone. Only the owner
// may move it between IN and OUT.
type Ownership uint8

const (
	Unclaimed      Ownership = iota // OUT, available to either detector
	PointerOwned                    // hovered by the pointer
	ProximityOwned                  // agent is within the interaction distance
)

// String returns a short name for logs.
func (o Ownership) String() string {
	switch o {
	case Unclaimed:
		return "unclaimed"
	case PointerOwned:
		return "pointer"
	case ProximityOwned:
		return "proximity"
	default:
		return "unknown"
	}
}

// ZoneState is the conceptual per-zone state machine.
type ZoneState uint8

const (
	StateOut          ZoneState = iota // initial state for every registered zone
	StateIn                            // engaged, not yet interacted
	StateInInteracted                  // engaged, proximity interact already emitted
)

// String returns the state name.
func (s ZoneState) String() string {
	switch s {
	case StateOut:
		return "OUT"
	case StateIn:
		return "IN"
	case StateInInteracted:
		return "IN_INTERACTED"
	default:
		return "UNKNOWN"
	}
}
