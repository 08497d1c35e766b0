package plant

import "math"

// #region holder-reading

// HolderReading is the per-gas slice of an observation: the holder's
// state of charge, pressure, this step's production rate, and any
// clipping raised by the previous dynamics update. Overflow and
// Underflow carry the clipped SOC magnitude for the owning agent's
// safety rules.
type HolderReading struct {
	SOC        float64   // [0,1]
	Pressure   float64   // kPa
	Supply     float64   // Nm³/h, production this step
	Overflow   float64   // SOC amount clipped at the top
	Underflow  float64   // SOC amount clipped at the bottom
	ModelState []float64 // holder state vector, owned by the dynamics model
}

// clone copies the reading including its state vector.
func (h HolderReading) clone() HolderReading {
	out := h
	out.ModelState = append([]float64(nil), h.ModelState...)
	return out
}

// #endregion holder-reading

// #region observation

// Observation is the immutable per-step snapshot handed to every agent.
// The authoritative copy is owned by the outer simulation loop; the
// environment reads one and returns a new one.
type Observation struct {
	Step int

	// Blast furnace outputs
	Si           float64 // silicon content [%]
	HotMetalTemp float64 // [°C]
	PigIronRate  float64 // [t/h]

	// BOF outputs
	SteelTemp     float64 // [°C]
	LiquidSteel   float64 // [t/h]
	BlowCountdown float64 // minutes until next oxygen blow
	Blowing       bool    // true while a blow is in progress

	// Coke oven outputs
	FurnaceTemp float64 // [°C]
	CokeRate    float64 // [t/h]

	// Gas network, keyed by GasTypes order
	Gas map[GasType]HolderReading

	// Shared resources
	COGAvailable    float64 // Nm³/h
	O2Available     float64 // Nm³/h
	PeakElectricity bool
}

// Clone deep-copies the observation so callers can treat it as a value.
func (o Observation) Clone() Observation {
	out := o
	out.Gas = make(map[GasType]HolderReading, len(o.Gas))
	for _, g := range GasTypes {
		if r, ok := o.Gas[g]; ok {
			out.Gas[g] = r.clone()
		}
	}
	return out
}

// observationRanges declares the valid interval for every numeric
// observation field an agent may read. Values outside these ranges make
// the reading malformed and trigger the engine's conservative fallback.
var observationRanges = map[string]Range{
	"si":             {Min: 0, Max: 2, Unit: "%"},
	"hot_metal_temp": {Min: 1000, Max: 1700, Unit: "°C"},
	"pig_iron_rate":  {Min: 0, Max: 500, Unit: "t/h"},
	"steel_temp":     {Min: 1400, Max: 1800, Unit: "°C"},
	"liquid_steel":   {Min: 0, Max: 300, Unit: "t/h"},
	"furnace_temp":   {Min: 800, Max: 1500, Unit: "°C"},
	"coke_rate":      {Min: 0, Max: 200, Unit: "t/h"},
	"soc":            {Min: 0, Max: 1, Unit: ""},
	"pressure":       {Min: 0, Max: 25, Unit: "kPa"},
	"supply":         {Min: 0, Max: 1e7, Unit: "Nm³/h"},
}

// Malformed reports the first out-of-range or non-finite field, or ""
// if the snapshot is clean. A non-empty result makes every engine use
// its conservative fallback action for the step.
func (o Observation) Malformed() string {
	checks := []struct {
		name string
		v    float64
	}{
		{"si", o.Si},
		{"hot_metal_temp", o.HotMetalTemp},
		{"pig_iron_rate", o.PigIronRate},
		{"steel_temp", o.SteelTemp},
		{"liquid_steel", o.LiquidSteel},
		{"furnace_temp", o.FurnaceTemp},
		{"coke_rate", o.CokeRate},
	}
	for _, c := range checks {
		if !observationRanges[c.name].Contains(c.v) {
			return c.name
		}
	}
	for _, g := range GasTypes {
		r, ok := o.Gas[g]
		if !ok {
			return "gas_" + string(g)
		}
		if !observationRanges["soc"].Contains(r.SOC) {
			return "soc_" + string(g)
		}
		if !observationRanges["pressure"].Contains(r.Pressure) {
			return "pressure_" + string(g)
		}
		if !observationRanges["supply"].Contains(r.Supply) {
			return "supply_" + string(g)
		}
	}
	if math.IsNaN(o.COGAvailable) || o.COGAvailable < 0 {
		return "cog_available"
	}
	if math.IsNaN(o.O2Available) || o.O2Available < 0 {
		return "o2_available"
	}
	return ""
}

// #endregion observation
