package plant

// #region action

// Action is one agent's chosen control setpoints for a step. Values are
// absolute setpoints, not deltas; the rule engine produces a new Action
// from the previous one and clamps it to the agent's envelope before it
// is applied.
type Action struct {
	Agent     AgentID
	Setpoints map[Setpoint]float64
}

// NewAction builds an action from a setpoint table.
func NewAction(agent AgentID, sp map[Setpoint]float64) Action {
	a := Action{Agent: agent, Setpoints: make(map[Setpoint]float64, len(sp))}
	for k, v := range sp {
		a.Setpoints[k] = v
	}
	return a
}

// Clone copies the action so the caller can mutate it freely.
func (a Action) Clone() Action {
	return NewAction(a.Agent, a.Setpoints)
}

// Get returns a setpoint value, or fallback if the action does not
// carry that setpoint.
func (a Action) Get(sp Setpoint, fallback float64) float64 {
	if v, ok := a.Setpoints[sp]; ok {
		return v
	}
	return fallback
}

// #endregion action
