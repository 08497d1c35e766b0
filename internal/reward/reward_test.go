package reward

import (
	"math"
	"testing"

	"github.com/oreforge/steelmas/internal/config"
	"github.com/oreforge/steelmas/internal/plant"
)

func testRewardConfig() config.RewardConfig {
	return config.Default().Reward
}

func observationWith(soc map[plant.GasType]float64, bfgSupply float64) plant.Observation {
	obs := plant.Observation{Gas: make(map[plant.GasType]plant.HolderReading)}
	for _, g := range plant.GasTypes {
		obs.Gas[g] = plant.HolderReading{SOC: soc[g], Supply: 50000}
	}
	r := obs.Gas[plant.GasBFG]
	r.Supply = bfgSupply
	obs.Gas[plant.GasBFG] = r
	return obs
}

func inBandConsumption(obs plant.Observation) map[plant.GasType]float64 {
	out := make(map[plant.GasType]float64)
	for _, g := range plant.GasTypes {
		out[g] = obs.Gas[g].Supply * 0.8
	}
	return out
}

func TestCalculateAllInBand(t *testing.T) {
	cfg := testRewardConfig()
	obs := observationWith(map[plant.GasType]float64{
		plant.GasBFG: 0.5, plant.GasBOFG: 0.5, plant.GasCOG: 0.5,
	}, cfg.BFGMaxSupply)

	r := Calculate(obs, inBandConsumption(obs), cfg)
	if r.Breakdown.Production != 1 {
		t.Fatalf("max supply should score 1, got %f", r.Breakdown.Production)
	}
	if r.Breakdown.Stability != 1 {
		t.Fatalf("in-band SOCs should score 1, got %f", r.Breakdown.Stability)
	}
	if r.Breakdown.Efficiency != 1 {
		t.Fatalf("in-band utilization should score 1, got %f", r.Breakdown.Efficiency)
	}
	if math.Abs(r.Total-1) > 1e-12 {
		t.Fatalf("expected total 1, got %f", r.Total)
	}
}

func TestStabilityPenalizesExcursion(t *testing.T) {
	cfg := testRewardConfig()
	inBand := observationWith(map[plant.GasType]float64{
		plant.GasBFG: 0.5, plant.GasBOFG: 0.5, plant.GasCOG: 0.5,
	}, 100000)
	outOfBand := observationWith(map[plant.GasType]float64{
		plant.GasBFG: 0.95, plant.GasBOFG: 0.5, plant.GasCOG: 0.5,
	}, 100000)

	a := Calculate(inBand, inBandConsumption(inBand), cfg)
	b := Calculate(outOfBand, inBandConsumption(outOfBand), cfg)
	if b.Breakdown.Stability >= a.Breakdown.Stability {
		t.Fatalf("excursion must lower stability: %f vs %f", b.Breakdown.Stability, a.Breakdown.Stability)
	}
	if b.Total >= a.Total {
		t.Fatalf("excursion must lower total: %f vs %f", b.Total, a.Total)
	}
}

func TestEfficiencyFallsOffOutsideBand(t *testing.T) {
	cfg := testRewardConfig()
	obs := observationWith(map[plant.GasType]float64{
		plant.GasBFG: 0.5, plant.GasBOFG: 0.5, plant.GasCOG: 0.5,
	}, 100000)

	low := make(map[plant.GasType]float64)
	for _, g := range plant.GasTypes {
		low[g] = obs.Gas[g].Supply * 0.1
	}
	r := Calculate(obs, low, cfg)
	if r.Breakdown.Efficiency >= 1 {
		t.Fatalf("under-utilization must lower efficiency, got %f", r.Breakdown.Efficiency)
	}
}

func TestProductionClamped(t *testing.T) {
	cfg := testRewardConfig()
	obs := observationWith(map[plant.GasType]float64{
		plant.GasBFG: 0.5, plant.GasBOFG: 0.5, plant.GasCOG: 0.5,
	}, cfg.BFGMaxSupply*3)
	r := Calculate(obs, inBandConsumption(obs), cfg)
	if r.Breakdown.Production != 1 {
		t.Fatalf("production must clamp at 1, got %f", r.Breakdown.Production)
	}
}

func TestSummarize(t *testing.T) {
	m := Summarize([]float64{1, 2, 3, 4})
	if m.Steps != 4 {
		t.Fatalf("steps: %d", m.Steps)
	}
	if m.Cumulative != 10 {
		t.Fatalf("cumulative: %f", m.Cumulative)
	}
	if m.Mean != 2.5 {
		t.Fatalf("mean: %f", m.Mean)
	}
	if m.Min != 1 || m.Max != 4 {
		t.Fatalf("min/max: %f/%f", m.Min, m.Max)
	}
	want := math.Sqrt(1.25)
	if math.Abs(m.Std-want) > 1e-12 {
		t.Fatalf("std: got %f want %f", m.Std, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	m := Summarize(nil)
	if m.Steps != 0 || m.Cumulative != 0 || m.Std != 0 {
		t.Fatalf("empty series must be all zero: %+v", m)
	}
}
