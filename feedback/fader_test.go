package feedback

import (
	"testing"

	"github.com/phanxgames/areas"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

// zoneFixture registers one zone and returns a proximity detector whose
// agent position the test moves through *pos.
func zoneFixture(t *testing.T) (*areas.Zone, *areas.ProximityDetector, *areas.Vec2) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	reg := areas.NewRegistry(areas.WithLogger(logger))
	h, err := reg.Add(areas.Definition{Name: "kiosk", Position: areas.Pos(0, 0), HalfExtents: areas.Pos(1, 1)})
	require.NoError(t, err)
	z, ok := reg.Zone(h)
	require.True(t, ok)

	pos := &areas.Vec2{X: 100}
	prox := areas.NewProximityDetector(reg, 1.5)
	prox.SetAgent(areas.AgentFunc(func() areas.Vec2 { return *pos }))
	return z, prox, pos
}

func TestFaderFollowsZone(t *testing.T) {
	z, prox, pos := zoneFixture(t)
	f := NewFader(1)
	f.Ease = ease.Linear
	f.Attach(z)

	assert.Equal(t, float32(0), f.Alpha())

	*pos = areas.Vec2{}
	prox.Tick(false)
	assert.True(t, f.Animating())

	assert.InDelta(t, 0.5, f.Update(0.5), 1e-4)
	assert.InDelta(t, 1.0, f.Update(0.5), 1e-4)
	assert.False(t, f.Animating())

	*pos = areas.Vec2{X: 100}
	prox.Tick(false)
	assert.InDelta(t, 0.75, f.Update(0.25), 1e-4)
}

func TestFaderReversesMidway(t *testing.T) {
	f := NewFader(1)
	f.Ease = ease.Linear

	f.FadeTo(1)
	f.Update(0.5)
	require.InDelta(t, 0.5, f.Alpha(), 1e-4)

	// Half the distance left to cover takes half the duration.
	f.FadeTo(0)
	f.Update(0.25)
	assert.InDelta(t, 0.25, f.Alpha(), 1e-4)
	f.Update(0.25)
	assert.Equal(t, float32(0), f.Alpha())
	assert.False(t, f.Animating())
}

func TestFaderZeroDurationSnaps(t *testing.T) {
	f := NewFader(0)
	f.FadeTo(1)
	assert.Equal(t, float32(1), f.Alpha())
	assert.False(t, f.Animating())
	assert.Equal(t, float32(1), f.Update(0.1))
}

func TestFaderDetach(t *testing.T) {
	z, prox, pos := zoneFixture(t)
	f := NewFader(1)
	f.Attach(z)
	f.Detach()

	*pos = areas.Vec2{}
	prox.Tick(false)
	require.True(t, z.IsIn())
	assert.False(t, f.Animating())
	assert.Equal(t, float32(0), f.Alpha())
}
