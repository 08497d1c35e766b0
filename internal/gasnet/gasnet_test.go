package gasnet

import (
	"testing"
)

func testParams() Params {
	return Params{
		A:            [][]float64{{1.0}},
		B:            [][]float64{{1.0 / 60 / 100000}}, // 100k Nm³ holder, 1-min step
		C:            [][]float64{{1.0}},
		X0:           []float64{0.5},
		Capacity:     100000,
		PressureMin:  8,
		PressureSpan: 8,
	}
}

func newTestHolder(t *testing.T) *Holder {
	t.Helper()
	h, err := NewHolder(testParams())
	if err != nil {
		t.Fatalf("new holder: %v", err)
	}
	return h
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	p := testParams()
	p.B = [][]float64{{1}, {2}}
	if _, err := NewHolder(p); err == nil {
		t.Fatal("expected error for mismatched B")
	}

	p = testParams()
	p.X0 = []float64{0.5, 0.5}
	if _, err := NewHolder(p); err == nil {
		t.Fatal("expected error for mismatched X0")
	}

	p = testParams()
	p.Capacity = 0
	if _, err := NewHolder(p); err == nil {
		t.Fatal("expected error for zero capacity")
	}
}

func TestInitialState(t *testing.T) {
	h := newTestHolder(t)
	st := h.Initial()
	if st.SOC != 0.5 {
		t.Fatalf("expected SOC 0.5, got %f", st.SOC)
	}
	if st.Pressure != 12 {
		t.Fatalf("expected pressure 12 kPa, got %f", st.Pressure)
	}
}

func TestStepIntegratesNetflow(t *testing.T) {
	h := newTestHolder(t)
	st := h.Initial()

	// 60000 Nm³/h into a 100k holder for one minute is +0.01 SOC.
	next, sig := h.Step(st, 60000)
	if diff := next.SOC - 0.51; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("expected SOC 0.51, got %f", next.SOC)
	}
	if sig.Overflow != 0 || sig.Underflow != 0 || sig.PressureClamped || sig.Excessive {
		t.Fatalf("unexpected signals: %+v", sig)
	}
}

func TestStepClipsAtFull(t *testing.T) {
	h := newTestHolder(t)
	st := State{X: []float64{0.99}, SOC: 0.99, Pressure: 15.92}

	next, sig := h.Step(st, 120000) // +0.02 SOC worth
	if next.SOC != 1 {
		t.Fatalf("SOC must clip to exactly 1, got %f", next.SOC)
	}
	if sig.Overflow <= 0 {
		t.Fatalf("expected overflow signal, got %+v", sig)
	}
	if !sig.PressureClamped {
		t.Fatal("pressure should report clamping at the top of the band")
	}
	if next.Pressure != 16 {
		t.Fatalf("pressure must clamp to 16 kPa, got %f", next.Pressure)
	}
	if next.X[0] != 1 {
		t.Fatalf("state vector must be rescaled to the clipped SOC, got %f", next.X[0])
	}
}

func TestStepClipsAtEmpty(t *testing.T) {
	h := newTestHolder(t)
	st := State{X: []float64{0.01}, SOC: 0.01, Pressure: 8.08}

	next, sig := h.Step(st, -120000)
	if next.SOC != 0 {
		t.Fatalf("SOC must clip to exactly 0, got %f", next.SOC)
	}
	if sig.Underflow <= 0 {
		t.Fatalf("expected underflow signal, got %+v", sig)
	}
	if next.Pressure != 8 {
		t.Fatalf("pressure must clamp to 8 kPa, got %f", next.Pressure)
	}
}

func TestStepLandsExactlyOnBounds(t *testing.T) {
	h := newTestHolder(t)

	// +3,000,000 Nm³/h for one minute into the 100k holder is exactly
	// +0.5 SOC, which from 0.5 lands on the upper bound without
	// crossing it.
	next, sig := h.Step(h.Initial(), 3000000)
	if next.SOC != 1 {
		t.Fatalf("expected SOC exactly 1, got %g", next.SOC)
	}
	if sig.Overflow != 0 || sig.Underflow != 0 {
		t.Fatalf("landing on the bound must not signal a clip: %+v", sig)
	}
	if sig.PressureClamped {
		t.Fatal("pressure at the top of the band is not a clamp event")
	}
	if next.Pressure != 16 {
		t.Fatalf("expected pressure 16 kPa, got %g", next.Pressure)
	}

	next, sig = h.Step(h.Initial(), -3000000)
	if next.SOC != 0 {
		t.Fatalf("expected SOC exactly 0, got %g", next.SOC)
	}
	if sig.Overflow != 0 || sig.Underflow != 0 {
		t.Fatalf("landing on the bound must not signal a clip: %+v", sig)
	}
	if next.Pressure != 8 {
		t.Fatalf("expected pressure 8 kPa, got %g", next.Pressure)
	}
}

func TestStepFlagsExcessiveChange(t *testing.T) {
	h := newTestHolder(t)
	st := h.Initial()
	_, sig := h.Step(st, 1e10)
	if !sig.Excessive {
		t.Fatal("expected excessive-change flag")
	}
}

func TestStepDeterministic(t *testing.T) {
	h := newTestHolder(t)
	a := h.Initial()
	b := h.Initial()
	for i := 0; i < 500; i++ {
		flow := float64((i%7)-3) * 20000
		var sa, sb ClipSignal
		a, sa = h.Step(a, flow)
		b, sb = h.Step(b, flow)
		if a.SOC != b.SOC || a.Pressure != b.Pressure || sa != sb {
			t.Fatalf("diverged at iteration %d: %f vs %f", i, a.SOC, b.SOC)
		}
	}
}

func TestStepDoesNotMutatePrev(t *testing.T) {
	h := newTestHolder(t)
	st := h.Initial()
	before := st.X[0]
	h.Step(st, 60000)
	if st.X[0] != before {
		t.Fatal("Step must not mutate the previous state")
	}
}
