package areas

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// fakeKeys reports the keys in down as just pressed, then forgets them.
type fakeKeys struct {
	down map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: make(map[ebiten.Key]bool)}
}

func (k *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool { return k.down[key] }

func (k *fakeKeys) press(key ebiten.Key) { k.down[key] = true }
func (k *fakeKeys) release()             { k.down = make(map[ebiten.Key]bool) }

// fakeHost is a HostInput that replays queued pointer moves.
type fakeHost struct {
	*fakeKeys
	moves [][2]float64
	polls int
}

func (h *fakeHost) Poll(target PointerTarget) {
	h.polls++
	for _, m := range h.moves {
		target.PointerMove(m[0], m[1])
	}
	h.moves = nil
}

// movableAgent is an AgentSource whose position tests set directly.
type movableAgent struct {
	pos Vec2
}

func (a *movableAgent) AgentPosition() Vec2 { return a.pos }

// recorder captures every event emitted by the zones it watches.
type recorder struct {
	events []Event
}

func (r *recorder) watch(z *Zone) {
	for k := EventIn; k < eventKindCount; k++ {
		z.On(k, func(ev Event) { r.events = append(r.events, ev) })
	}
}

func (r *recorder) kinds() []string {
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind.String())
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

// countingStore records forwarded ECS events.
type countingStore struct {
	events []ZoneEvent
}

func (s *countingStore) EmitEvent(ev ZoneEvent) { s.events = append(s.events, ev) }

func quietRegistry() (*Registry, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewRegistry(WithLogger(logger)), hook
}

func mustAdd(t *testing.T, reg *Registry, def Definition) *Zone {
	t.Helper()
	h, err := reg.Add(def)
	require.NoError(t, err)
	z, ok := reg.Zone(h)
	require.True(t, ok)
	return z
}

func square(name string, x, y, half float64) Definition {
	return Definition{Name: name, Position: Pos(x, y), HalfExtents: Pos(half, half)}
}

// testCamera is a top-down camera over a 100x100 viewport centred on the
// world origin: screen (50, 50) is world (0, 0).
func testCamera() (*TopDownCamera, Rect) {
	vp := Rect{Width: 100, Height: 100}
	return NewTopDownCamera(vp), vp
}

// newTestEngine builds an engine with no host input and a quiet logger.
func newTestEngine(t *testing.T, cfg Config) (*Engine, *test.Hook) {
	t.Helper()
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e.SetLogger(logger)
	e.SetHostInput(nil)
	cam, vp := testCamera()
	e.SetCamera(cam)
	e.SetViewport(vp)
	return e, hook
}
