package areas

// PointerPicker resolves the pointer against zone hit proxies and owns the
// hovered-zone singleton. Pointer events only record the position and mark
// the picker dirty; the ray-cast happens at most once per Tick. A press is
// the exception: it is resolved immediately so it acts on the zone under it.
type PointerPicker struct {
	reg      *Registry
	camera   Camera
	viewport Rect

	screenX     float64
	screenY     float64
	ndcX, ndcY  float64
	havePointer bool
	inViewport  bool
	needsUpdate bool

	hovered *Zone

	lastErr  error
	raycasts int
}

// NewPointerPicker creates a picker over reg.
func NewPointerPicker(reg *Registry) *PointerPicker {
	return &PointerPicker{reg: reg}
}

// SetCamera sets the camera used to build pointer rays. A nil camera turns
// Tick into a no-op; pending pointer moves are resolved once one is set.
// Until the first pointer event there is nothing to resolve.
func (p *PointerPicker) SetCamera(cam Camera) {
	p.camera = cam
}

// SetViewport sets the screen rectangle pointer coordinates are relative to.
func (p *PointerPicker) SetViewport(vp Rect) {
	if vp == p.viewport {
		return
	}
	p.viewport = vp
	if p.havePointer {
		p.setPointer(p.screenX, p.screenY)
	}
}

// Invalidate forces a ray-cast on the next Tick, for when the camera moved
// under a stationary pointer. It has no effect before the first pointer event.
func (p *PointerPicker) Invalidate() { p.needsUpdate = p.havePointer }

// Viewport returns the current viewport.
func (p *PointerPicker) Viewport() Rect { return p.viewport }

// PointerMove records a mouse-move or touch-move at screen (sx, sy).
func (p *PointerPicker) PointerMove(sx, sy float64) {
	p.setPointer(sx, sy)
}

// PointerDown records a mouse-down or touch-start at screen (sx, sy). The
// hover is re-resolved at the press position first, so a tap with no prior
// move or a move and press within one frame lands on the zone under the
// press; that zone then receives 'interact'. A press on empty space only
// releases the hover. This path ignores DidInteract and leaves it unchanged:
// every press is honoured. Without a camera the press is recorded as a move.
func (p *PointerPicker) PointerDown(sx, sy float64) {
	p.setPointer(sx, sy)
	if p.camera == nil {
		return
	}
	p.releaseIneligible()
	p.resolve()
	if p.hovered != nil {
		p.hovered.interact(SourcePointer)
	}
}

// setPointer converts screen coordinates to normalized device coordinates
// and marks the picker dirty. A position outside a sized viewport hovers
// nothing.
func (p *PointerPicker) setPointer(sx, sy float64) {
	p.screenX, p.screenY = sx, sy
	vp := p.viewport
	p.inViewport = vp.Width <= 0 || vp.Height <= 0 || vp.Contains(sx, sy)
	if vp.Width > 0 {
		p.ndcX = (sx-vp.X)/vp.Width*2 - 1
	}
	if vp.Height > 0 {
		p.ndcY = 1 - (sy-vp.Y)/vp.Height*2
	}
	p.havePointer = true
	p.needsUpdate = true
}

// NDC returns the last pointer position in normalized device coordinates.
func (p *PointerPicker) NDC() (x, y float64) { return p.ndcX, p.ndcY }

// Dirty reports whether a ray-cast is pending.
func (p *PointerPicker) Dirty() bool { return p.needsUpdate }

// Hovered returns the zone the pointer currently owns, or nil.
func (p *PointerPicker) Hovered() *Zone { return p.hovered }

// Tick resolves a pending ray-cast and updates the hovered zone. When the
// hovered zone changes, the old one receives 'out' and returns to
// Unclaimed before the new one receives 'in' and becomes PointerOwned.
func (p *PointerPicker) Tick() {
	p.releaseIneligible()
	if p.camera == nil {
		p.lastErr = ErrNoCamera
		return
	}
	p.lastErr = nil
	if !p.needsUpdate {
		return
	}
	p.resolve()
}

// releaseIneligible releases a hovered zone that was deactivated and marks
// the pointer for re-picking.
func (p *PointerPicker) releaseIneligible() {
	if p.hovered != nil && !p.hovered.eligible() {
		p.release()
		p.needsUpdate = true
	}
}

// resolve casts the pointer ray and moves the hover to the zone it hits.
// The camera must be set.
func (p *PointerPicker) resolve() {
	var target *Zone
	if p.inViewport {
		ray := p.camera.Ray(p.ndcX, p.ndcY)
		p.raycasts++
		target = p.pick(ray)
	}

	if target != p.hovered {
		if p.hovered != nil {
			p.release()
		}
		if target != nil && target.eligible() {
			p.hovered = target
			target.enter(PointerOwned, SourcePointer)
		}
	}
	p.needsUpdate = false
}

// release clears the singleton before emitting, so subscribers observe a
// consistent Hovered().
func (p *PointerPicker) release() {
	z := p.hovered
	p.hovered = nil
	z.leave(SourcePointer)
}

// pick returns the eligible zone whose proxy is hit nearest along ray.
// Ties go to the earlier-registered zone. An empty registry is a miss.
func (p *PointerPicker) pick(ray Ray) *Zone {
	var best *Zone
	var bestT float64
	p.reg.Each(func(z *Zone) bool {
		if !z.eligible() || z.hitMesh == nil {
			return true
		}
		t, ok := z.hitMesh.IntersectRay(ray)
		if !ok {
			return true
		}
		if best == nil || t < bestT {
			best = z
			bestT = t
		}
		return true
	})
	return best
}

// Err returns why the last Tick was skipped, or nil.
func (p *PointerPicker) Err() error { return p.lastErr }
