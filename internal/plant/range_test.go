package plant

import (
	"math"
	"testing"
)

func testEnvelope() Envelope {
	return Envelope{
		Order: []Setpoint{SPWindVolume, SPPCI},
		Ranges: map[Setpoint]Range{
			SPWindVolume: {Min: 1000, Max: 8000, Unit: "Nm³/min"},
			SPPCI:        {Min: 0, Max: 200, Unit: "kg/t HM"},
		},
	}
}

func TestRangeClampInside(t *testing.T) {
	r := Range{Min: 0, Max: 10}
	v, clamped := r.Clamp(5)
	if clamped {
		t.Fatal("in-range value should not clamp")
	}
	if v != 5 {
		t.Fatalf("expected 5, got %f", v)
	}
}

func TestRangeClampBounds(t *testing.T) {
	r := Range{Min: 0, Max: 10}
	if v, clamped := r.Clamp(-3); !clamped || v != 0 {
		t.Fatalf("expected clamp to 0, got %f (clamped=%v)", v, clamped)
	}
	if v, clamped := r.Clamp(42); !clamped || v != 10 {
		t.Fatalf("expected clamp to 10, got %f (clamped=%v)", v, clamped)
	}
}

func TestRangeClampNaN(t *testing.T) {
	r := Range{Min: 2, Max: 10}
	v, clamped := r.Clamp(math.NaN())
	if !clamped {
		t.Fatal("NaN must count as clamped")
	}
	if v != 2 {
		t.Fatalf("NaN should clamp to Min, got %f", v)
	}
}

func TestEnvelopeClampActionCounts(t *testing.T) {
	env := testEnvelope()
	a := NewAction(AgentBF, map[Setpoint]float64{
		SPWindVolume: 9000, // above max
		SPPCI:        -50,  // below min
	})
	out, clamps := env.ClampAction(a)
	if clamps != 2 {
		t.Fatalf("expected 2 clamps, got %d", clamps)
	}
	if out.Setpoints[SPWindVolume] != 8000 {
		t.Fatalf("wind not clamped to max: %f", out.Setpoints[SPWindVolume])
	}
	if out.Setpoints[SPPCI] != 0 {
		t.Fatalf("pci not clamped to min: %f", out.Setpoints[SPPCI])
	}
}

func TestEnvelopeClampActionLeavesInput(t *testing.T) {
	env := testEnvelope()
	a := NewAction(AgentBF, map[Setpoint]float64{SPWindVolume: 9000})
	env.ClampAction(a)
	if a.Setpoints[SPWindVolume] != 9000 {
		t.Fatal("ClampAction must not mutate its input")
	}
}

func TestObservationMalformed(t *testing.T) {
	obs := cleanObservation()
	if field := obs.Malformed(); field != "" {
		t.Fatalf("clean observation flagged malformed: %q", field)
	}

	obs.Si = math.NaN()
	if field := obs.Malformed(); field != "si" {
		t.Fatalf("expected si, got %q", field)
	}

	obs = cleanObservation()
	r := obs.Gas[GasBFG]
	r.SOC = 1.3
	obs.Gas[GasBFG] = r
	if field := obs.Malformed(); field != "soc_bfg" {
		t.Fatalf("expected soc_bfg, got %q", field)
	}

	obs = cleanObservation()
	delete(obs.Gas, GasCOG)
	if field := obs.Malformed(); field != "gas_cog" {
		t.Fatalf("expected gas_cog, got %q", field)
	}
}

func cleanObservation() Observation {
	obs := Observation{
		Si:           0.45,
		HotMetalTemp: 1500,
		PigIronRate:  200,
		SteelTemp:    1650,
		LiquidSteel:  100,
		FurnaceTemp:  1200,
		CokeRate:     40,
		COGAvailable: 20000,
		O2Available:  80000,
		Gas:          make(map[GasType]HolderReading),
	}
	for _, g := range GasTypes {
		obs.Gas[g] = HolderReading{SOC: 0.5, Pressure: 12, Supply: 50000}
	}
	return obs
}
