package twin

import (
	"math"

	"github.com/oreforge/steelmas/internal/plant"
)

// #region inputs

// BFInput assembles the blast furnace model inputs from the actuated
// setpoints and the resources visible in the observation.
func BFInput(a plant.Action, obs plant.Observation) Record {
	return Record{
		KeyWindVolume:   a.Get(plant.SPWindVolume, 0),
		KeyO2Enrichment: a.Get(plant.SPO2Enrichment, 0),
		KeyPCI:          a.Get(plant.SPPCI, 0),
		KeyCOGRatio:     a.Get(plant.SPCOGRatio, 0),
		KeyCOGAvailable: obs.COGAvailable,
	}
}

// BOFInput assembles the BOF model inputs. blowPhase is 1 during an
// oxygen blow and 0 between blows.
func BOFInput(a plant.Action, blowPhase float64) Record {
	return Record{
		KeyOxygen:     a.Get(plant.SPOxygen, 0),
		KeyScrapSteel: a.Get(plant.SPScrapSteel, 0),
		KeyBlowPhase:  blowPhase,
	}
}

// CokeInput assembles the coke oven model inputs.
func CokeInput(a plant.Action) Record {
	return Record{
		KeyHeatingGas:  a.Get(plant.SPHeatingGas, 0),
		KeyPushingRate: a.Get(plant.SPPushingRate, 0),
	}
}

// #endregion inputs

// #region outputs

// BFResult is the decoded blast furnace output.
type BFResult struct {
	PigIronRate  float64
	HotMetalTemp float64
	Si           float64
	BFGRate      float64
	Degraded     []string
}

// BOFResult is the decoded BOF output.
type BOFResult struct {
	LiquidSteel float64
	SteelTemp   float64
	BOFGRate    float64
	Degraded    []string
}

// CokeResult is the decoded coke oven output.
type CokeResult struct {
	FurnaceTemp float64
	CokeRate    float64
	COGRate     float64
	Degraded    []string
}

// DecodeBF reads the blast furnace outputs. A missing or non-finite
// field is replaced by its previous observed value and reported in
// Degraded so the caller can log and count it.
func DecodeBF(out Record, prev plant.Observation) BFResult {
	var r BFResult
	r.PigIronRate = field(out, KeyPigIronRate, prev.PigIronRate, &r.Degraded)
	r.HotMetalTemp = field(out, KeyHotMetalTemp, prev.HotMetalTemp, &r.Degraded)
	r.Si = field(out, KeySi, prev.Si, &r.Degraded)
	r.BFGRate = field(out, KeyBFGRate, prev.Gas[plant.GasBFG].Supply, &r.Degraded)
	return r
}

// DecodeBOF reads the BOF outputs with the same substitution policy.
func DecodeBOF(out Record, prev plant.Observation) BOFResult {
	var r BOFResult
	r.LiquidSteel = field(out, KeyLiquidSteel, prev.LiquidSteel, &r.Degraded)
	r.SteelTemp = field(out, KeySteelTemp, prev.SteelTemp, &r.Degraded)
	r.BOFGRate = field(out, KeyBOFGRate, prev.Gas[plant.GasBOFG].Supply, &r.Degraded)
	return r
}

// DecodeCoke reads the coke oven outputs with the same substitution
// policy.
func DecodeCoke(out Record, prev plant.Observation) CokeResult {
	var r CokeResult
	r.FurnaceTemp = field(out, KeyFurnaceTemp, prev.FurnaceTemp, &r.Degraded)
	r.CokeRate = field(out, KeyCokeRate, prev.CokeRate, &r.Degraded)
	r.COGRate = field(out, KeyCOGRate, prev.Gas[plant.GasCOG].Supply, &r.Degraded)
	return r
}

func field(out Record, key string, prev float64, degraded *[]string) float64 {
	v, ok := out[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		*degraded = append(*degraded, key)
		return prev
	}
	return v
}

// #endregion outputs
