package rules

// #region imports
import (
	"github.com/oreforge/steelmas/internal/bus"
	"github.com/oreforge/steelmas/internal/plant"
)

// #endregion imports

// #region tier

// Tier is a priority class of control rules. Lower values win.
type Tier int

const (
	TierSafety Tier = iota
	TierProcess
	TierEnergy
	TierEconomic
)

// tierOrder fixes the evaluation sequence.
var tierOrder = []Tier{TierSafety, TierProcess, TierEnergy, TierEconomic}

// String implements fmt.Stringer for log output.
func (t Tier) String() string {
	switch t {
	case TierSafety:
		return "safety"
	case TierProcess:
		return "process"
	case TierEnergy:
		return "energy"
	case TierEconomic:
		return "economic"
	}
	return "unknown"
}

// #endregion tier

// #region adjustment

// Direction says which way a percentage step moves a setpoint.
type Direction int

const (
	Increase Direction = iota
	Decrease
)

// Adjustment is one bounded change to a setpoint. Either a relative
// percentage step (Fraction, with Direction) or an absolute target
// (Absolute non-nil); the relative form bounds the rate of change per
// step, the absolute form is reserved for returning to a nominal value
// already inside the envelope.
type Adjustment struct {
	Target    plant.Setpoint
	Direction Direction
	Fraction  float64
	Absolute  *float64
}

// #endregion adjustment

// #region context

// Context is everything a predicate may read: the observation, the
// messages drained for this agent, the agent's currently held action,
// and the rule latches from the previous step.
type Context struct {
	Obs      plant.Observation
	Messages []bus.Message
	Current  plant.Action
	Active   map[string]bool
}

// HasMessage reports whether any drained message has the given type.
func (c Context) HasMessage(t bus.Type) bool {
	for _, m := range c.Messages {
		if m.Type == t {
			return true
		}
	}
	return false
}

// Message returns the first drained message of the given type.
func (c Context) Message(t bus.Type) (bus.Message, bool) {
	for _, m := range c.Messages {
		if m.Type == t {
			return m, true
		}
	}
	return bus.Message{}, false
}

// #endregion context

// #region rule

// Emission describes the message a firing safety rule publishes.
type Emission struct {
	Type      bus.Type
	Recipient plant.AgentID
	Urgency   bus.Urgency
	Payload   func(Context) map[string]float64 // may be nil
}

// Rule is a named predicate-and-effect pair in one tier. Rules are
// data: the engine owns all sequencing, locking, and clamping.
type Rule struct {
	Name string
	Tier Tier

	// When activates the rule. Release, if set, keeps the rule firing
	// after a When activation until Release holds (hysteresis).
	When    func(Context) bool
	Release func(Context) bool

	Adjust []Adjustment
	Emit   *Emission
}

// #endregion rule

// #region decision

// Decision is the engine's output for one step. It carries everything
// the environment needs and the engine's next internal state, which is
// only applied on Commit so an aborted step leaves the engine untouched.
type Decision struct {
	Action         plant.Action
	Fired          []string
	Clamps         int
	FellBack       bool
	MalformedField string
	Outbound       []bus.Message

	nextActive map[string]bool
}

// #endregion decision
