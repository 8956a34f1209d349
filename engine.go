package areas

import (
	"time"

	"github.com/sirupsen/logrus"
)

// HostInput is the platform input layer. Poll forwards this tick's pointer
// moves and presses to target; IsKeyJustPressed feeds the InputGate.
type HostInput interface {
	KeySource
	Poll(target PointerTarget)
}

// PointerTarget receives pointer events. PointerPicker implements it.
type PointerTarget interface {
	PointerMove(sx, sy float64)
	PointerDown(sx, sy float64)
}

// Engine is the top-level object that owns the zone registry, both
// detectors and the input gate, and runs them in a fixed order each tick.
type Engine struct {
	registry  *Registry
	picker    *PointerPicker
	proximity *ProximityDetector
	gate      *InputGate
	host      HostInput
	logger    logrus.FieldLogger
	debug     bool

	injectQueue []syntheticEvent
	script      *ScriptRunner

	tick  uint64
	stats TickStats
}

// NewEngine creates an engine from cfg, registers cfg.Zones and reads input
// from ebiten. Rejected zone definitions are logged and skipped; only an
// invalid key binding is returned as an error.
func NewEngine(cfg Config) (*Engine, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	logger := logrus.StandardLogger()
	reg := NewRegistry(WithLogger(logger))
	host := NewEbitenInput()

	e := &Engine{
		registry:  reg,
		picker:    NewPointerPicker(reg),
		proximity: NewProximityDetector(reg, cfg.InteractionDistance),
		gate:      NewInputGate(host, bindings),
		host:      host,
		logger:    logger,
		debug:     cfg.Debug,
	}
	reg.AddAll(cfg.Zones)
	return e, nil
}

// Registry returns the engine's zone registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Picker returns the pointer picker.
func (e *Engine) Picker() *PointerPicker { return e.picker }

// Proximity returns the proximity detector.
func (e *Engine) Proximity() *ProximityDetector { return e.proximity }

// Gate returns the input gate.
func (e *Engine) Gate() *InputGate { return e.gate }

// Add registers a zone. See Registry.Add.
func (e *Engine) Add(def Definition) (ZoneHandle, error) {
	return e.registry.Add(def)
}

// Zone resolves a handle. See Registry.Zone.
func (e *Engine) Zone(h ZoneHandle) (*Zone, bool) {
	return e.registry.Zone(h)
}

// SetAgent sets the agent position source.
func (e *Engine) SetAgent(agent AgentSource) {
	e.proximity.SetAgent(agent)
}

// SetCamera sets the camera used for pointer ray-casts.
func (e *Engine) SetCamera(cam Camera) {
	e.picker.SetCamera(cam)
}

// SetViewport sets the screen rectangle pointer coordinates are relative to.
func (e *Engine) SetViewport(vp Rect) {
	e.picker.SetViewport(vp)
}

// SetHostInput replaces the platform input layer. Nil disables polling;
// injected events still work.
func (e *Engine) SetHostInput(host HostInput) {
	e.host = host
	if host == nil {
		e.gate.keys = nil
		return
	}
	e.gate.keys = host
}

// SetLogger sets the logger for the engine and its registry.
func (e *Engine) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		return
	}
	e.logger = l
	e.registry.logger = l
}

// SetEntityStore sets the optional ECS bridge.
func (e *Engine) SetEntityStore(store EntityStore) {
	e.registry.SetEntityStore(store)
}

// SetDebugMode enables or disables per-tick stats logging at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Update runs one tick:
//
//  1. the script runner steps, then one injected event is consumed or the
//     host input is polled (pointer events only mark the picker dirty);
//  2. the input gate latches the interact action;
//  3. the pointer picker resolves the pending ray-cast;
//  4. the proximity detector evaluates every zone.
func (e *Engine) Update() {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	if e.script != nil {
		e.script.step(e)
	}
	if !e.processInjectedInput() && e.host != nil {
		e.host.Poll(e.picker)
	}

	interact := e.gate.Sample()
	raycasts := e.picker.raycasts
	e.picker.Tick()
	e.proximity.Tick(interact)
	e.tick++

	if e.debug {
		e.stats = TickStats{
			Tick:         e.tick,
			Zones:        e.registry.Len(),
			Engaged:      e.registry.countEngaged(),
			Raycasts:     e.picker.raycasts - raycasts,
			Interact:     interact,
			PickerErr:    e.picker.Err(),
			ProximityErr: e.proximity.Err(),
			Duration:     time.Since(t0),
		}
		e.debugLog(e.stats)
	}
}

// Ticks returns the number of completed Update calls.
func (e *Engine) Ticks() uint64 { return e.tick }
