package areas

// syntheticEvent is a single injected input event. Screen coordinates are
// used and converted through the picker's viewport and camera, identical
// to real pointer input.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
}

type syntheticKind uint8

const (
	injectMove syntheticKind = iota
	injectDown
	injectInteract
)

// InjectPointerMove queues a pointer move at the given screen coordinates.
// The event is consumed on the next Update.
func (e *Engine) InjectPointerMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: injectMove, screenX: x, screenY: y})
}

// InjectPointerDown queues a press (mouse-down or touch-start) at the given
// screen coordinates.
func (e *Engine) InjectPointerDown(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: injectDown, screenX: x, screenY: y})
}

// InjectHoverClick queues a move followed by a press at the same
// coordinates. Consumes two frames, so the press lands on the zone the move
// resolved.
func (e *Engine) InjectHoverClick(x, y float64) {
	e.InjectPointerMove(x, y)
	e.InjectPointerDown(x, y)
}

// InjectInteract queues one interact-key edge.
func (e *Engine) InjectInteract() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: injectInteract})
}

// Pending returns the number of queued synthetic events.
func (e *Engine) Pending() int { return len(e.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it to
// the picker or the gate. Returns true if an event was consumed (host input
// is skipped for that frame).
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case injectMove:
		e.picker.PointerMove(evt.screenX, evt.screenY)
	case injectDown:
		e.picker.PointerDown(evt.screenX, evt.screenY)
	case injectInteract:
		e.gate.Assert()
	}
	return true
}
