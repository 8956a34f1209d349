package ecs

import (
	"testing"

	"github.com/phanxgames/areas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	require.NotNil(t, NewDonburiStore(world))
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []areas.ZoneEvent
	ZoneEventType.Subscribe(world, func(w donburi.World, e areas.ZoneEvent) {
		received = append(received, e)
	})

	store.EmitEvent(areas.ZoneEvent{Kind: areas.EventIn, Name: "garage", Source: areas.SourceProximity})
	store.EmitEvent(areas.ZoneEvent{Kind: areas.EventInteract, Name: "garage", Source: areas.SourcePointer})

	// Events are queued until processed.
	ZoneEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, areas.EventIn, received[0].Kind)
	assert.Equal(t, areas.SourceProximity, received[0].Source)
	assert.Equal(t, areas.EventInteract, received[1].Kind)
	assert.Equal(t, "garage", received[1].Name)
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store areas.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_FromRegistry(t *testing.T) {
	world := donburi.NewWorld()
	reg := areas.NewRegistry()
	reg.SetEntityStore(NewDonburiStore(world))

	h, err := reg.Add(areas.Definition{Name: "kiosk", Position: areas.Pos(0, 0), HalfExtents: areas.Pos(1, 1)})
	require.NoError(t, err)
	z, ok := reg.Zone(h)
	require.True(t, ok)

	var got []areas.ZoneEvent
	ZoneEventType.Subscribe(world, func(w donburi.World, e areas.ZoneEvent) {
		got = append(got, e)
	})

	z.Interact()
	events.ProcessAllEvents(world)

	require.Len(t, got, 1)
	assert.Equal(t, h, got[0].Handle)
	assert.Equal(t, areas.SourceDirect, got[0].Source)
}
