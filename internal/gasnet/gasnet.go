// Package gasnet simulates gas holder dynamics as a discrete-time
// linear state-space model: x' = A·x + B·u, soc = C·x', with u the net
// flow (production minus consumption). The state of charge is hard
// clipped to [0,1]; clipped mass is surfaced as an overflow/underflow
// signal rather than silently absorbed.
package gasnet

import (
	"fmt"
	"math"
)

// #region params

// Params holds the fixed linear model for one holder. The matrices are
// design values supplied by configuration, never computed here.
type Params struct {
	A [][]float64 // n x n state transition
	B [][]float64 // n x 1 input
	C [][]float64 // 1 x n output (state of charge)

	X0       []float64 // initial state vector
	Capacity float64   // Nm³, informational; B already folds it in

	// Pressure model: p = PressureMin + PressureSpan·soc, clamped to
	// [PressureMin, PressureMin+PressureSpan].
	PressureMin  float64 // kPa
	PressureSpan float64 // kPa
}

// Validate rejects malformed matrix dimensions and degenerate pressure
// bands. Called at construction; a failure here must abort startup.
func (p Params) Validate() error {
	n := len(p.A)
	if n == 0 {
		return fmt.Errorf("gasnet: empty A matrix")
	}
	for i, row := range p.A {
		if len(row) != n {
			return fmt.Errorf("gasnet: A row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if len(p.B) != n {
		return fmt.Errorf("gasnet: B has %d rows, want %d", len(p.B), n)
	}
	for i, row := range p.B {
		if len(row) != 1 {
			return fmt.Errorf("gasnet: B row %d has %d columns, want 1", i, len(row))
		}
	}
	if len(p.C) != 1 || len(p.C[0]) != n {
		return fmt.Errorf("gasnet: C must be 1x%d", n)
	}
	if len(p.X0) != n {
		return fmt.Errorf("gasnet: X0 has %d entries, want %d", len(p.X0), n)
	}
	for _, m := range [][][]float64{p.A, p.B, p.C} {
		for _, row := range m {
			for _, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("gasnet: non-finite matrix entry")
				}
			}
		}
	}
	if p.Capacity <= 0 {
		return fmt.Errorf("gasnet: capacity must be positive, got %.4g", p.Capacity)
	}
	if p.PressureSpan <= 0 || p.PressureMin < 0 {
		return fmt.Errorf("gasnet: bad pressure band min=%.4g span=%.4g", p.PressureMin, p.PressureSpan)
	}
	return nil
}

// #endregion params

// #region state

// State is the holder state after one update.
type State struct {
	X        []float64 // model state vector
	SOC      float64   // state of charge, always in [0,1]
	Pressure float64   // kPa, within the declared band
}

// ClipSignal reports what the update had to force. Overflow and
// Underflow are SOC magnitudes; Excessive flags a net flow that would
// move SOC by more than a full band in one step, which points at a
// configuration error upstream.
type ClipSignal struct {
	Overflow        float64
	Underflow       float64
	PressureClamped bool
	Excessive       bool
}

// #endregion state

// #region holder

// Holder advances one gas holder. It carries no mutable state; the
// caller owns the State and passes it back in.
type Holder struct {
	params Params
}

// NewHolder validates the parameters and builds a holder.
func NewHolder(p Params) (*Holder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Holder{params: p}, nil
}

// Initial returns the configured initial state.
func (h *Holder) Initial() State {
	x := append([]float64(nil), h.params.X0...)
	soc := dot(h.params.C[0], x)
	st := State{X: x, SOC: soc}
	st.SOC, _ = clip01(st.SOC)
	st.Pressure = h.pressure(st.SOC)
	return st
}

// Step applies x' = A·x + B·netflow, derives SOC and pressure, and
// clips to the valid band. Identical inputs always produce identical
// outputs.
func (h *Holder) Step(prev State, netflow float64) (State, ClipSignal) {
	var sig ClipSignal
	n := len(h.params.A)

	next := make([]float64, n)
	for i := 0; i < n; i++ {
		v := h.params.B[i][0] * netflow
		for j := 0; j < n; j++ {
			v += h.params.A[i][j] * prev.X[j]
		}
		next[i] = v
	}

	socRaw := dot(h.params.C[0], next)
	if math.Abs(socRaw-prev.SOC) > 1 {
		sig.Excessive = true
	}

	soc, clipped := clip01(socRaw)
	if clipped {
		if socRaw > 1 {
			sig.Overflow = socRaw - 1
		} else {
			sig.Underflow = -socRaw
		}
		// Rescale the state vector so the stored state stays consistent
		// with the clipped SOC.
		if socRaw != 0 {
			scale := soc / socRaw
			for i := range next {
				next[i] *= scale
			}
		} else {
			for i := range next {
				next[i] = 0
			}
		}
	}

	// Pressure derives from the raw output so an out-of-band excursion
	// is visible as a clamp event.
	raw := h.params.PressureMin + h.params.PressureSpan*socRaw
	st := State{X: next, SOC: soc}
	st.Pressure, sig.PressureClamped = h.clampPressure(raw)
	return st, sig
}

// pressure maps a clipped SOC to the declared band, for Initial.
func (h *Holder) pressure(soc float64) float64 {
	p, _ := h.clampPressure(h.params.PressureMin + h.params.PressureSpan*soc)
	return p
}

func (h *Holder) clampPressure(p float64) (float64, bool) {
	lo := h.params.PressureMin
	hi := h.params.PressureMin + h.params.PressureSpan
	if math.IsNaN(p) || p < lo {
		return lo, true
	}
	if p > hi {
		return hi, true
	}
	return p, false
}

// #endregion holder

// #region helpers

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func clip01(v float64) (float64, bool) {
	if math.IsNaN(v) {
		return 0, true
	}
	if v < 0 {
		return 0, true
	}
	if v > 1 {
		return 1, true
	}
	return v, false
}

// #endregion helpers
