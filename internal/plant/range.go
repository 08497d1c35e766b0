package plant

import (
	"fmt"
	"math"
)

// #region range

// Range is a closed valid interval with an explicit physical unit.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Unit string  `yaml:"unit"`
}

// Validate rejects inverted bounds and non-finite endpoints.
// A bad Range is a configuration fault and must stop initialization.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("range [%s]: non-finite bound", r.Unit)
	}
	if r.Min > r.Max {
		return fmt.Errorf("range [%s]: inverted bounds %.4g > %.4g", r.Unit, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether v is finite and within the interval.
func (r Range) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= r.Min && v <= r.Max
}

// Clamp returns v forced into the interval and whether clamping occurred.
// A NaN input clamps to Min; the caller counts the event either way.
func (r Range) Clamp(v float64) (float64, bool) {
	if math.IsNaN(v) {
		return r.Min, true
	}
	if v < r.Min {
		return r.Min, true
	}
	if v > r.Max {
		return r.Max, true
	}
	return v, false
}

// #endregion range

// #region envelope

// Envelope declares the operating intervals for one agent's setpoints.
// Order fixes the setpoint iteration order for deterministic clamping.
type Envelope struct {
	Order  []Setpoint
	Ranges map[Setpoint]Range
}

// Validate checks every declared range and that Order matches Ranges.
func (e Envelope) Validate() error {
	if len(e.Order) != len(e.Ranges) {
		return fmt.Errorf("envelope: %d ordered setpoints but %d ranges", len(e.Order), len(e.Ranges))
	}
	for _, sp := range e.Order {
		r, ok := e.Ranges[sp]
		if !ok {
			return fmt.Errorf("envelope: no range for setpoint %q", sp)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("setpoint %q: %w", sp, err)
		}
	}
	return nil
}

// ClampAction forces every setpoint of a into the envelope.
// Returns the clamped copy and the number of clamping events.
func (e Envelope) ClampAction(a Action) (Action, int) {
	out := a.Clone()
	clamps := 0
	for _, sp := range e.Order {
		v, ok := out.Setpoints[sp]
		if !ok {
			continue
		}
		cv, clamped := e.Ranges[sp].Clamp(v)
		if clamped {
			clamps++
		}
		out.Setpoints[sp] = cv
	}
	return out, clamps
}

// #endregion envelope
