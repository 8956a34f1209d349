package areas

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeySource answers whether a key went down on the current tick.
type KeySource interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// Bindings selects which keys count as the interact action.
type Bindings struct {
	InteractKeys []ebiten.Key
	// DriveKeysInteract also accepts the vehicle movement keys (arrows and
	// WASD). Off by default: it conflates driving with confirming.
	DriveKeysInteract bool
}

// DefaultBindings returns the dedicated interact keys.
func DefaultBindings() Bindings {
	return Bindings{InteractKeys: []ebiten.Key{ebiten.KeyE, ebiten.KeyEnter, ebiten.KeySpace}}
}

var driveKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
}

// InputGate samples the edge-triggered interact action once per tick. It
// holds no state across ticks beyond the latch for the current one;
// suppressing repeats while a key is held is the detectors' job.
type InputGate struct {
	keys     KeySource
	bindings Bindings

	pending  bool
	asserted bool
}

// NewInputGate creates a gate over keys. keys may be nil, in which case only
// Assert can raise the action.
func NewInputGate(keys KeySource, bindings Bindings) *InputGate {
	return &InputGate{keys: keys, bindings: bindings}
}

// SetBindings replaces the key bindings.
func (g *InputGate) SetBindings(b Bindings) {
	g.bindings = b
}

// Assert raises the action for the next Sample, as if a bound key had gone down.
func (g *InputGate) Assert() {
	g.pending = true
}

// Sample latches whether the action is asserted on this tick.
func (g *InputGate) Sample() bool {
	g.asserted = g.pending || g.keyEdge()
	g.pending = false
	return g.asserted
}

// Asserted returns the value latched by the last Sample.
func (g *InputGate) Asserted() bool { return g.asserted }

func (g *InputGate) keyEdge() bool {
	if g.keys == nil {
		return false
	}
	for _, k := range g.bindings.InteractKeys {
		if g.keys.IsKeyJustPressed(k) {
			return true
		}
	}
	if g.bindings.DriveKeysInteract {
		for _, k := range driveKeys {
			if g.keys.IsKeyJustPressed(k) {
				return true
			}
		}
	}
	return false
}
