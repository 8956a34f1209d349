package areas

// AgentSource provides the tracked agent's ground-plane position. It is
// sampled once per tick.
type AgentSource interface {
	AgentPosition() Vec2
}

// AgentFunc adapts a function to AgentSource.
type AgentFunc func() Vec2

// AgentPosition calls f.
func (f AgentFunc) AgentPosition() Vec2 { return f() }

// ProximityDetector moves zones in and out of IN based on the agent's
// distance to each zone centre. The test is circular: HalfExtents play no part.
type ProximityDetector struct {
	reg   *Registry
	agent AgentSource

	// InteractionDistance is shared by every zone. Enter uses a strict
	// distance < InteractionDistance; exit uses >=, so the boundary counts as
	// outside.
	InteractionDistance float64

	lastErr error
}

// NewProximityDetector creates a detector over reg.
func NewProximityDetector(reg *Registry, distance float64) *ProximityDetector {
	if distance <= 0 {
		distance = DefaultInteractionDistance
	}
	return &ProximityDetector{reg: reg, InteractionDistance: distance}
}

// SetAgent sets the agent position source. A nil source turns Tick into a no-op.
func (p *ProximityDetector) SetAgent(agent AgentSource) {
	p.agent = agent
}

// Tick evaluates every zone once. interact reports whether the interact
// action was asserted this tick.
//
// Per zone, in order: release if it became ineligible, enter, interact, exit.
// Zones owned by the pointer skip enter and exit but still take the interact
// step while IN.
func (p *ProximityDetector) Tick(interact bool) {
	if p.agent == nil {
		p.lastErr = ErrNoAgent
		return
	}
	p.lastErr = nil
	agent := p.agent.AgentPosition()

	p.reg.Each(func(z *Zone) bool {
		p.evaluate(z, agent, interact)
		return true
	})
}

func (p *ProximityDetector) evaluate(z *Zone, agent Vec2, interact bool) {
	if !z.eligible() {
		if z.isIn && z.owner == ProximityOwned {
			z.leave(SourceProximity)
		}
		return
	}

	claimed := z.TestsAgent()
	var distance float64
	if claimed {
		distance = z.position.Dist(agent)
		if distance < p.InteractionDistance && !z.isIn {
			z.enter(ProximityOwned, SourceProximity)
		}
	}

	if interact && z.isIn && !z.didInteract {
		z.didInteract = true
		z.emit(EventInteract, SourceProximity)
	}

	// Re-read ownership: an 'in' or 'interact' subscriber may have changed it.
	if z.TestsAgent() && z.owner == ProximityOwned && distance >= p.InteractionDistance && z.isIn {
		z.leave(SourceProximity)
	}
}

// Err returns why the last Tick was skipped, or nil.
func (p *ProximityDetector) Err() error { return p.lastErr }
