package areas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPickerFixture(t *testing.T) (*Registry, *PointerPicker) {
	t.Helper()
	reg, _ := quietRegistry()
	p := NewPointerPicker(reg)
	cam, vp := testCamera()
	p.SetCamera(cam)
	p.SetViewport(vp)
	return reg, p
}

func TestPickerHoverEnterLeave(t *testing.T) {
	reg, p := newPickerFixture(t)
	z := mustAdd(t, reg, square("kiosk", 0, 0, 5))
	rec := &recorder{}
	rec.watch(z)

	p.PointerMove(50, 50)
	p.Tick()
	assert.Equal(t, []string{"in"}, rec.kinds())
	assert.Same(t, z, p.Hovered())
	assert.Equal(t, PointerOwned, z.Owner())
	assert.False(t, z.TestsAgent(), "pointer owns the zone")

	p.PointerMove(90, 90)
	p.Tick()
	assert.Equal(t, []string{"in", "out"}, rec.kinds())
	assert.Nil(t, p.Hovered())
	assert.Equal(t, Unclaimed, z.Owner())

	for _, ev := range rec.events {
		assert.Equal(t, SourcePointer, ev.Source)
	}
}

func TestPickerHoverSwitchesZones(t *testing.T) {
	reg, p := newPickerFixture(t)
	left := mustAdd(t, reg, square("left", -20, 0, 5))
	right := mustAdd(t, reg, square("right", 20, 0, 5))

	var log []string
	for _, z := range []*Zone{left, right} {
		z := z
		z.OnIn(func(Event) { log = append(log, z.Name()+":in") })
		z.OnOut(func(ev Event) {
			assert.Nil(t, p.Hovered(), "singleton is cleared before 'out'")
			log = append(log, z.Name()+":out")
		})
	}

	p.PointerMove(30, 50)
	p.Tick()
	p.PointerMove(70, 50)
	p.Tick()

	assert.Equal(t, []string{"left:in", "left:out", "right:in"}, log)
	assert.Same(t, right, p.Hovered())
	assert.False(t, left.IsIn())
}

func TestPickerCoalescesMoves(t *testing.T) {
	reg, p := newPickerFixture(t)
	z := mustAdd(t, reg, square("kiosk", 0, 0, 5))
	rec := &recorder{}
	rec.watch(z)

	// Several moves between ticks: only the last position is resolved.
	p.PointerMove(10, 10)
	p.PointerMove(50, 50)
	p.PointerMove(90, 90)
	p.PointerMove(51, 49)
	assert.True(t, p.Dirty())

	p.Tick()
	assert.Equal(t, 1, p.raycasts)
	assert.False(t, p.Dirty())
	assert.Equal(t, []string{"in"}, rec.kinds())

	// Nothing pending: no ray-cast.
	p.Tick()
	p.Tick()
	assert.Equal(t, 1, p.raycasts)
}

func TestPickerMissAndEmptyRegistry(t *testing.T) {
	_, p := newPickerFixture(t)
	p.PointerMove(50, 50)
	p.Tick()
	assert.Nil(t, p.Hovered())
	assert.NoError(t, p.Err())

	reg, p := newPickerFixture(t)
	mustAdd(t, reg, square("kiosk", 0, 0, 5))
	p.PointerMove(5, 5)
	p.Tick()
	assert.Nil(t, p.Hovered())
}

func TestPickerPressInteractsEveryTime(t *testing.T) {
	reg, p := newPickerFixture(t)
	z := mustAdd(t, reg, square("kiosk", 0, 0, 5))
	rec := &recorder{}
	rec.watch(z)

	p.PointerMove(50, 50)
	p.Tick()
	p.PointerDown(50, 50)
	p.PointerDown(50, 50)
	p.PointerDown(50, 50)

	assert.Equal(t, []string{"in", "interact", "interact", "interact"}, rec.kinds())
	assert.False(t, z.DidInteract(), "pointer presses leave the latch alone")
}

func TestPickerTapWithoutPriorMove(t *testing.T) {
	reg, p := newPickerFixture(t)
	z := mustAdd(t, reg, square("kiosk", 0, 0, 5))
	rec := &recorder{}
	rec.watch(z)

	p.PointerDown(50, 50)
	assert.Equal(t, []string{"in", "interact"}, rec.kinds(), "a touch-start hovers and interacts at once")
	assert.Same(t, z, p.Hovered())
	assert.False(t, p.Dirty())
	assert.Equal(t, 1, p.raycasts)
}

func TestPickerPressTargetsZoneUnderPointer(t *testing.T) {
	reg, p := newPickerFixture(t)
	a := mustAdd(t, reg, square("a", 0, 0, 5))
	b := mustAdd(t, reg, square("b", 30, 0, 5))
	recA, recB := &recorder{}, &recorder{}
	recA.watch(a)
	recB.watch(b)

	p.PointerMove(50, 50)
	p.Tick()
	require.Same(t, a, p.Hovered())

	// Pressed over b while a is still hovered.
	p.PointerDown(80, 50)
	assert.Equal(t, []string{"in", "out"}, recA.kinds())
	assert.Equal(t, []string{"in", "interact"}, recB.kinds())
	assert.Same(t, b, p.Hovered())

	// Pressed over empty space: b is released, nothing interacts.
	p.PointerDown(5, 5)
	assert.Equal(t, []string{"in", "out"}, recA.kinds())
	assert.Equal(t, []string{"in", "interact", "out"}, recB.kinds())
	assert.Nil(t, p.Hovered())

	p.Tick()
	assert.Len(t, recA.events, 2)
	assert.Len(t, recB.events, 3)
}

func TestPickerPointerOutsideViewport(t *testing.T) {
	reg, p := newPickerFixture(t)
	// Spans screen -50..150, wider than the 100x100 viewport.
	z := mustAdd(t, reg, square("wide", 0, 0, 100))
	rec := &recorder{}
	rec.watch(z)

	p.PointerMove(50, 50)
	p.Tick()
	require.Equal(t, []string{"in"}, rec.kinds())

	p.PointerMove(120, 50)
	p.Tick()
	assert.Equal(t, []string{"in", "out"}, rec.kinds())
	assert.Equal(t, 1, p.raycasts, "no ray is cast outside the viewport")

	p.PointerDown(120, 50)
	assert.Len(t, rec.events, 2)

	p.PointerMove(60, 50)
	p.Tick()
	assert.Equal(t, []string{"in", "out", "in"}, rec.kinds())
}

func TestPickerNearestHitWins(t *testing.T) {
	reg, p := newPickerFixture(t)
	low := square("low", 0, 0, 5)
	low.HitHeight = 0
	high := square("high", 0, 0, 5)
	high.HitHeight = 10
	mustAdd(t, reg, low)
	hz := mustAdd(t, reg, high)

	p.PointerMove(50, 50)
	p.Tick()
	assert.Same(t, hz, p.Hovered(), "the proxy closer to the camera is picked")
}

func TestPickerTiesGoToEarlierZone(t *testing.T) {
	reg, p := newPickerFixture(t)
	first := mustAdd(t, reg, square("first", 0, 0, 5))
	mustAdd(t, reg, square("second", 0, 0, 5))

	p.PointerMove(50, 50)
	p.Tick()
	assert.Same(t, first, p.Hovered())
}

func TestPickerSkipsIneligibleZones(t *testing.T) {
	reg, p := newPickerFixture(t)
	locked := square("locked", 0, 0, 5)
	locked.Interactable = Bool(false)
	mustAdd(t, reg, locked)
	off := mustAdd(t, reg, square("off", 0, 0, 5))
	off.Deactivate()

	p.PointerMove(50, 50)
	p.Tick()
	assert.Nil(t, p.Hovered())

	// Pointer-only zones are still pickable.
	pointerOnly := square("pointer-only", 0, 0, 5)
	pointerOnly.TestAgent = Bool(false)
	pz := mustAdd(t, reg, pointerOnly)
	p.PointerMove(50, 50)
	p.Tick()
	assert.Same(t, pz, p.Hovered())
}

func TestPickerCustomHitMesh(t *testing.T) {
	reg, p := newPickerFixture(t)
	def := square("tower", 0, 0, 5)
	def.HitMesh = HitBox{Min: Vec3{X: 20, Y: 20, Z: 0}, Max: Vec3{X: 30, Y: 30, Z: 40}}
	z := mustAdd(t, reg, def)

	p.PointerMove(50, 50)
	p.Tick()
	assert.Nil(t, p.Hovered(), "the zone rectangle is not pickable when a mesh is given")

	p.PointerMove(75, 75)
	p.Tick()
	assert.Same(t, z, p.Hovered())
}

func TestPickerDeactivatedHoverIsReleased(t *testing.T) {
	reg, p := newPickerFixture(t)
	z := mustAdd(t, reg, square("kiosk", 0, 0, 5))
	rec := &recorder{}
	rec.watch(z)

	p.PointerMove(50, 50)
	p.Tick()
	require.Same(t, z, p.Hovered())

	z.Deactivate()
	p.Tick()
	p.Tick()
	assert.Equal(t, []string{"in", "out"}, rec.kinds())
	assert.Nil(t, p.Hovered())
	assert.Equal(t, Unclaimed, z.Owner())

	// Reactivation alone does not re-hover; the next pointer move does.
	z.Activate()
	p.Tick()
	assert.Nil(t, p.Hovered())
	p.PointerMove(50, 50)
	p.Tick()
	assert.Equal(t, []string{"in", "out", "in"}, rec.kinds())
}

func TestPickerWithoutCamera(t *testing.T) {
	reg, _ := quietRegistry()
	p := NewPointerPicker(reg)
	_, vp := testCamera()
	p.SetViewport(vp)
	z := mustAdd(t, reg, square("kiosk", 0, 0, 5))
	rec := &recorder{}
	rec.watch(z)

	p.Tick()
	assert.ErrorIs(t, p.Err(), ErrNoCamera, "reported even with nothing pending")

	p.PointerMove(50, 50)
	p.Tick()
	assert.ErrorIs(t, p.Err(), ErrNoCamera)
	assert.True(t, p.Dirty(), "the pending move is kept")
	p.PointerDown(50, 50)
	assert.Empty(t, rec.events, "a press without a camera cannot be resolved")
	assert.Empty(t, rec.events)
	assert.Equal(t, 0, p.raycasts)

	cam, _ := testCamera()
	p.SetCamera(cam)
	p.Tick()
	assert.NoError(t, p.Err())
	assert.Equal(t, []string{"in"}, rec.kinds())
}

func TestPickerNDC(t *testing.T) {
	reg, _ := quietRegistry()
	p := NewPointerPicker(reg)
	p.SetViewport(Rect{X: 100, Y: 50, Width: 200, Height: 100})

	tests := []struct {
		name   string
		sx, sy float64
		wx, wy float64
	}{
		{"top left", 100, 50, -1, 1},
		{"centre", 200, 100, 0, 0},
		{"bottom right", 300, 150, 1, -1},
		{"quarter", 150, 125, -0.5, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.PointerMove(tt.sx, tt.sy)
			x, y := p.NDC()
			assert.InDelta(t, tt.wx, x, 1e-9)
			assert.InDelta(t, tt.wy, y, 1e-9)
		})
	}
}

func TestPickerViewportChangeMarksDirty(t *testing.T) {
	reg, p := newPickerFixture(t)
	mustAdd(t, reg, square("kiosk", 0, 0, 5))
	assert.False(t, p.Dirty(), "no pointer yet")
	p.Invalidate()
	assert.False(t, p.Dirty())

	p.PointerMove(50, 50)
	p.Tick()
	require.False(t, p.Dirty())

	p.SetViewport(p.Viewport())
	assert.False(t, p.Dirty(), "same viewport")

	p.SetViewport(Rect{Width: 200, Height: 200})
	assert.True(t, p.Dirty())

	p.Tick()
	p.Invalidate()
	assert.True(t, p.Dirty())
}

func TestPickerViewportChangeRemapsPointer(t *testing.T) {
	_, p := newPickerFixture(t)
	p.PointerMove(50, 50)
	x, y := p.NDC()
	require.InDelta(t, 0.0, x, 1e-9)
	require.InDelta(t, 0.0, y, 1e-9)

	p.SetViewport(Rect{Width: 200, Height: 200})
	x, y = p.NDC()
	assert.InDelta(t, -0.5, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)
}

func TestPickerWaitsForFirstPointerEvent(t *testing.T) {
	reg, p := newPickerFixture(t)
	z := mustAdd(t, reg, square("centre", 0, 0, 5))

	p.Tick()
	assert.Nil(t, p.Hovered(), "an unmoved pointer does not pick the viewport centre")
	assert.False(t, z.IsIn())
	assert.Equal(t, 0, p.raycasts)
}

func TestPointerAndProximityShareOneEngagement(t *testing.T) {
	reg, picker := newPickerFixture(t)
	prox := NewProximityDetector(reg, 1.5)
	agent := &movableAgent{pos: Vec2{100, 100}}
	prox.SetAgent(agent)
	z := mustAdd(t, reg, square("kiosk", 0, 0, 5))
	rec := &recorder{}
	rec.watch(z)

	tick := func(interact bool) {
		picker.Tick()
		prox.Tick(interact)
	}

	// Pointer hovers first.
	picker.PointerMove(50, 50)
	tick(false)
	require.Equal(t, []string{"in"}, rec.kinds())

	// The agent drives up: no second 'in'.
	agent.pos = Vec2{0.5, 0}
	tick(false)
	assert.Equal(t, []string{"in"}, rec.kinds())
	assert.Equal(t, PointerOwned, z.Owner())

	// The pointer leaves while the agent is still near: 'out' from the
	// pointer, then proximity claims the zone on the same tick.
	picker.PointerMove(90, 90)
	tick(false)
	assert.Equal(t, []string{"in", "out", "in"}, rec.kinds())
	assert.Equal(t, ProximityOwned, z.Owner())
	assert.Equal(t, SourcePointer, rec.events[1].Source)
	assert.Equal(t, SourceProximity, rec.events[2].Source)

	// Hovering a proximity-engaged zone does not emit another 'in'.
	picker.PointerMove(50, 50)
	tick(false)
	assert.Len(t, rec.events, 3)
	assert.Equal(t, PointerOwned, z.Owner())
}
