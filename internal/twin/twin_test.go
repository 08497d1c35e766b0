package twin

import (
	"math"
	"testing"

	"github.com/oreforge/steelmas/internal/plant"
)

func TestReferenceDeterministic(t *testing.T) {
	ref := NewReference()
	in := Record{KeyWindVolume: 4000, KeyO2Enrichment: 3.5, KeyPCI: 150}
	a, err := ref.Invoke(plant.ProcessBlastFurnace, in)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	b, err := ref.Invoke(plant.ProcessBlastFurnace, in)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	for k, v := range a {
		if b[k] != v {
			t.Fatalf("non-deterministic output %s: %f vs %f", k, v, b[k])
		}
	}
}

func TestReferenceBlastFurnaceOutputs(t *testing.T) {
	ref := NewReference()
	out, err := ref.Invoke(plant.ProcessBlastFurnace, Record{
		KeyWindVolume: 4000, KeyO2Enrichment: 3.5, KeyPCI: 150,
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out[KeyBFGRate] != 100000 {
		t.Fatalf("expected bfg rate 100000, got %f", out[KeyBFGRate])
	}
	if out[KeyPigIronRate] != 200 {
		t.Fatalf("expected pig iron 200 t/h, got %f", out[KeyPigIronRate])
	}
	if out[KeyHotMetalTemp] <= 1400 || out[KeyHotMetalTemp] >= 1600 {
		t.Fatalf("hot metal temp out of plausible band: %f", out[KeyHotMetalTemp])
	}
}

func TestReferenceBOFBlowPhaseGatesGas(t *testing.T) {
	ref := NewReference()
	idle, err := ref.Invoke(plant.ProcessBOF, Record{KeyOxygen: 45000, KeyScrapSteel: 20, KeyBlowPhase: 0})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if idle[KeyBOFGRate] != 0 {
		t.Fatalf("no gas outside a blow, got %f", idle[KeyBOFGRate])
	}

	blowing, err := ref.Invoke(plant.ProcessBOF, Record{KeyOxygen: 45000, KeyScrapSteel: 20, KeyBlowPhase: 1})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if blowing[KeyBOFGRate] <= 0 {
		t.Fatalf("expected gas during a blow, got %f", blowing[KeyBOFGRate])
	}
}

func TestReferenceUnknownProcess(t *testing.T) {
	ref := NewReference()
	if _, err := ref.Invoke(plant.ProcessID("rolling_mill"), Record{}); err == nil {
		t.Fatal("expected error for unknown process")
	}
}

func TestDecodeSubstitutesMissingField(t *testing.T) {
	prev := plant.Observation{
		Si:  0.45,
		Gas: map[plant.GasType]plant.HolderReading{plant.GasBFG: {Supply: 90000}},
	}
	out := Record{
		KeyPigIronRate:  210,
		KeyHotMetalTemp: 1510,
		// si missing, bfg_rate NaN
		KeyBFGRate: math.NaN(),
	}

	r := DecodeBF(out, prev)
	if r.Si != 0.45 {
		t.Fatalf("missing field must hold previous value, got %f", r.Si)
	}
	if r.BFGRate != 90000 {
		t.Fatalf("NaN field must hold previous value, got %f", r.BFGRate)
	}
	if r.PigIronRate != 210 {
		t.Fatalf("present field must pass through, got %f", r.PigIronRate)
	}
	if len(r.Degraded) != 2 {
		t.Fatalf("expected 2 degraded fields, got %v", r.Degraded)
	}
}

func TestDecodeCleanOutputHasNoDegraded(t *testing.T) {
	out := Record{KeyFurnaceTemp: 1200, KeyCokeRate: 40, KeyCOGRate: 20000}
	r := DecodeCoke(out, plant.Observation{Gas: map[plant.GasType]plant.HolderReading{}})
	if len(r.Degraded) != 0 {
		t.Fatalf("unexpected degraded fields: %v", r.Degraded)
	}
	if r.COGRate != 20000 {
		t.Fatalf("wrong cog rate: %f", r.COGRate)
	}
}
