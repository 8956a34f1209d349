package areas

import "math"

// HitMesh is a pickable proxy consulted only by the pointer picker.
// IntersectRay returns the distance along r to the nearest hit.
type HitMesh interface {
	IntersectRay(r Ray) (t float64, ok bool)
}

// HitShape is a 2D region on a horizontal plane.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangle on the plane. X, Y is the minimum corner.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular region on the plane.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon on the plane.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Proxies ---

// parallelEpsilon is the smallest |Dir.Z| treated as crossing a plane.
const parallelEpsilon = 1e-9

// GroundProxy is a flat pickable proxy: Shape laid on the horizontal plane at height Z.
type GroundProxy struct {
	Z     float64
	Shape HitShape
}

// IntersectRay intersects r with the plane, then tests the hit point against Shape.
func (g GroundProxy) IntersectRay(r Ray) (float64, bool) {
	if g.Shape == nil || math.Abs(r.Dir.Z) < parallelEpsilon {
		return 0, false
	}
	t := (g.Z - r.Origin.Z) / r.Dir.Z
	if t < 0 {
		return 0, false
	}
	p := r.At(t)
	if !g.Shape.Contains(p.X, p.Y) {
		return 0, false
	}
	return t, true
}

// GroundRect builds the default proxy for a zone: its rectangle on the plane at height z.
func GroundRect(center, halfExtents Vec2, z float64) GroundProxy {
	return GroundProxy{
		Z: z,
		Shape: HitRect{
			X:      center.X - halfExtents.X,
			Y:      center.Y - halfExtents.Y,
			Width:  2 * halfExtents.X,
			Height: 2 * halfExtents.Y,
		},
	}
}

// HitBox is an axis-aligned box proxy.
type HitBox struct {
	Min, Max Vec3
}

// IntersectRay uses the slab method. A ray starting inside the box hits at t = 0.
func (b HitBox) IntersectRay(r Ray) (float64, bool) {
	tMin, tMax := 0.0, math.Inf(1)
	axes := [3][4]float64{
		{r.Origin.X, r.Dir.X, b.Min.X, b.Max.X},
		{r.Origin.Y, r.Dir.Y, b.Min.Y, b.Max.Y},
		{r.Origin.Z, r.Dir.Z, b.Min.Z, b.Max.Z},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if math.Abs(d) < parallelEpsilon {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
