package areas

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Zone   string  `json:"zone,omitempty"`
	State  string  `json:"state,omitempty"`
}

// scenarioScript is the top-level JSON structure for a scenario script.
type scenarioScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences agent moves, injected input and state expectations
// across ticks, for headless replay of interaction scenarios. Attach to an
// Engine via SetScriptRunner.
//
// Actions: "agent" (x, y) places the scripted agent; "move" and "press"
// (x, y) inject pointer events; "click" injects a move then a press;
// "interact" injects an interact-key edge; "wait" (frames) idles;
// "expect" (zone, state) records a failure unless every zone named zone is
// in state ("OUT", "IN" or "IN_INTERACTED").
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	agent    Vec2
	attached bool
	failures []string
}

// LoadScript parses a JSON scenario script and returns a ScriptRunner ready
// to be attached to an Engine via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scenario script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "agent", "move", "press", "click", "interact", "wait":
		case "expect":
			if st.Zone == "" {
				return nil, fmt.Errorf("parse scenario script: step %d: expect needs a zone", i)
			}
			if _, ok := parseState(st.State); !ok {
				return nil, fmt.Errorf("parse scenario script: step %d: unknown state %q", i, st.State)
			}
		default:
			return nil, fmt.Errorf("parse scenario script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the engine. The runner's step
// method is called at the start of Update each frame.
func (e *Engine) SetScriptRunner(runner *ScriptRunner) {
	e.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Failures returns the expectations that did not hold, in script order.
func (r *ScriptRunner) Failures() []string {
	return r.failures
}

// AgentPosition implements AgentSource for the scripted agent.
func (r *ScriptRunner) AgentPosition() Vec2 {
	return r.agent
}

// step advances the runner by one frame. Called from Engine.Update.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "agent":
		r.agent = Vec2{X: st.X, Y: st.Y}
		if !r.attached {
			e.SetAgent(r)
			r.attached = true
		}
	case "move":
		e.InjectPointerMove(st.X, st.Y)
	case "press":
		e.InjectPointerDown(st.X, st.Y)
	case "click":
		e.InjectHoverClick(st.X, st.Y)
	case "interact":
		e.InjectInteract()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		r.expect(e, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}

// expect checks the state reached by the previous tick.
func (r *ScriptRunner) expect(e *Engine, st scriptStep) {
	want, _ := parseState(st.State)
	found := false
	e.registry.Each(func(z *Zone) bool {
		if z.name != st.Zone {
			return true
		}
		found = true
		if got := z.State(); got != want {
			r.failures = append(r.failures,
				fmt.Sprintf("tick %d: zone %q is %s, want %s", e.tick, st.Zone, got, want))
		}
		return true
	})
	if !found {
		r.failures = append(r.failures, fmt.Sprintf("tick %d: zone %q not registered", e.tick, st.Zone))
	}
}

func parseState(s string) (ZoneState, bool) {
	switch s {
	case "OUT":
		return StateOut, true
	case "IN":
		return StateIn, true
	case "IN_INTERACTED":
		return StateInInteracted, true
	default:
		return 0, false
	}
}
