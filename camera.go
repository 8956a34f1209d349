package areas

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera turns pointer device coordinates into a world-space ray.
// ndcX and ndcY are in [-1, 1], with +Y up.
type Camera interface {
	Ray(ndcX, ndcY float64) Ray
}

// --- Perspective ---

// PerspectiveCamera is a pinhole camera looking from Position towards Target.
type PerspectiveCamera struct {
	Position Vec3
	Target   Vec3
	// Up defaults to +Z when zero.
	Up Vec3
	// FovY is the vertical field of view in radians.
	FovY float64
	// Aspect is viewport width / height.
	Aspect float64
}

// Ray returns the unit ray from the camera through (ndcX, ndcY).
func (c *PerspectiveCamera) Ray(ndcX, ndcY float64) Ray {
	up := c.Up
	if up == (Vec3{}) {
		up = Vec3{Z: 1}
	}
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}

	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(up).Normalize()
	camUp := right.Cross(forward)

	tanHalf := math.Tan(c.FovY / 2)
	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(camUp.Scale(ndcY * tanHalf)).
		Normalize()
	return Ray{Origin: c.Position, Dir: dir}
}

// --- Top-down ---

// TopDownCamera looks straight down the Z axis. X and Y are the world
// position the camera centres on; at Zoom 1 one viewport pixel spans one
// world unit. Screen Y and world Y both increase downward.
type TopDownCamera struct {
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect
	// Height is the world Z rays start from.
	Height float64

	follow     AgentSource
	followLerp float64
	glide      *glideAnim

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	computedFor   topDownParams
	computed      bool
}

// glideAnim holds active glide tweens for camera X and Y.
type glideAnim struct {
	tweenX, tweenY *gween.Tween
	doneX, doneY   bool
}

type topDownParams struct {
	x, y, zoom, rotation float64
	viewport             Rect
}

// NewTopDownCamera creates a TopDownCamera with default values and the given viewport.
func NewTopDownCamera(viewport Rect) *TopDownCamera {
	return &TopDownCamera{
		Zoom:     1.0,
		Viewport: viewport,
		Height:   100,
	}
}

// Follow makes the camera track agent. lerp is the fraction of the remaining
// distance covered per Update (1 snaps). A nil agent stops following.
func (c *TopDownCamera) Follow(agent AgentSource, lerp float64) {
	c.follow = agent
	c.followLerp = lerp
}

// GlideTo animates the camera to (x, y) over duration seconds. It overrides
// Follow until the glide completes.
func (c *TopDownCamera) GlideTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.glide = &glideAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Update advances the glide or follow by dt seconds and reports whether the
// camera moved. Callers that pick with this camera should then call
// PointerPicker.Invalidate, since the world under the pointer changed.
func (c *TopDownCamera) Update(dt float32) bool {
	prevX, prevY := c.X, c.Y

	if g := c.glide; g != nil {
		if !g.doneX {
			v, done := g.tweenX.Update(dt)
			c.X, g.doneX = float64(v), done
		}
		if !g.doneY {
			v, done := g.tweenY.Update(dt)
			c.Y, g.doneY = float64(v), done
		}
		if g.doneX && g.doneY {
			c.glide = nil
		}
	} else if c.follow != nil {
		p := c.follow.AgentPosition()
		c.X += (p.X - c.X) * c.followLerp
		c.Y += (p.Y - c.Y) * c.followLerp
	}

	return c.X != prevX || c.Y != prevY
}

// computeViewMatrix recomputes the cached view matrix when any camera field changed.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *TopDownCamera) computeViewMatrix() [6]float64 {
	p := topDownParams{x: c.X, y: c.Y, zoom: c.Zoom, rotation: c.Rotation, viewport: c.Viewport}
	if c.computed && p == c.computedFor {
		return c.viewMatrix
	}
	c.computed = true
	c.computedFor = p

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *TopDownCamera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *TopDownCamera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// Ray maps (ndcX, ndcY) back to a viewport pixel, then casts straight down
// from Height above that world point.
func (c *TopDownCamera) Ray(ndcX, ndcY float64) Ray {
	sx := c.Viewport.X + (ndcX+1)/2*c.Viewport.Width
	sy := c.Viewport.Y + (1-ndcY)/2*c.Viewport.Height
	wx, wy := c.ScreenToWorld(sx, sy)
	return Ray{
		Origin: Vec3{X: wx, Y: wy, Z: c.Height},
		Dir:    Vec3{Z: -1},
	}
}

var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// invertAffine returns the inverse of a 2D affine matrix, or identity when singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
