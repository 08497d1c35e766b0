package rules

// #region imports
import (
	"github.com/oreforge/steelmas/internal/bus"
	"github.com/oreforge/steelmas/internal/config"
	"github.com/oreforge/steelmas/internal/plant"
)

// #endregion imports

// #region blast-furnace

// BlastFurnaceRules builds the blast furnace hierarchy from its
// configured thresholds and step fractions.
func BlastFurnaceRules(c config.BFConfig) []Rule {
	return []Rule{
		{
			Name: "hot_metal_over_temp",
			Tier: TierSafety,
			When: func(ctx Context) bool { return ctx.Obs.HotMetalTemp > c.TempMax },
			Adjust: []Adjustment{
				{Target: plant.SPPCI, Direction: Decrease, Fraction: c.SafetyStep},
				{Target: plant.SPO2Enrichment, Direction: Decrease, Fraction: c.SafetyStep},
			},
			Emit: &Emission{
				Type:      bus.TypeEmergencyThrottle,
				Recipient: plant.Broadcast,
				Urgency:   bus.UrgencyHigh,
				Payload: func(ctx Context) map[string]float64 {
					return map[string]float64{"hot_metal_temp": ctx.Obs.HotMetalTemp}
				},
			},
		},
		{
			Name: "silicon_over_limit",
			Tier: TierSafety,
			When: func(ctx Context) bool { return ctx.Obs.Si > c.SiMax },
			Adjust: []Adjustment{
				{Target: plant.SPPCI, Direction: Decrease, Fraction: 0.05},
			},
		},
		{
			Name:    "silicon_high",
			Tier:    TierProcess,
			When:    func(ctx Context) bool { return ctx.Obs.Si > c.SiTarget+c.SiBand },
			Release: func(ctx Context) bool { return ctx.Obs.Si < c.SiTarget+c.SiBand/2 },
			Adjust: []Adjustment{
				{Target: plant.SPPCI, Direction: Decrease, Fraction: c.ProcessStep},
				{Target: plant.SPO2Enrichment, Direction: Decrease, Fraction: c.ProcessStep},
			},
		},
		{
			Name:    "silicon_low",
			Tier:    TierProcess,
			When:    func(ctx Context) bool { return ctx.Obs.Si < c.SiTarget-c.SiBand },
			Release: func(ctx Context) bool { return ctx.Obs.Si > c.SiTarget-c.SiBand/2 },
			Adjust: []Adjustment{
				{Target: plant.SPPCI, Direction: Increase, Fraction: c.ProcessStep},
			},
		},
		{
			Name: "holder_full",
			Tier: TierEnergy,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[plant.GasBFG]
				return r.SOC > c.SOCHigh || r.Pressure > c.PHigh
			},
			Release: func(ctx Context) bool {
				r := ctx.Obs.Gas[plant.GasBFG]
				return r.SOC < c.SOCRelease && r.Pressure < c.PHigh-1
			},
			Adjust: []Adjustment{
				{Target: plant.SPWindVolume, Direction: Decrease, Fraction: c.EnergyStep},
				{Target: plant.SPPCI, Direction: Decrease, Fraction: c.PCIStep},
				{Target: plant.SPO2Enrichment, Direction: Decrease, Fraction: c.EnergyStep},
			},
		},
		{
			Name: "holder_empty",
			Tier: TierEnergy,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[plant.GasBFG]
				return r.SOC < c.SOCLow || r.Pressure < c.PLow
			},
			Adjust: []Adjustment{
				{Target: plant.SPWindVolume, Direction: Increase, Fraction: c.EnergyStep},
				{Target: plant.SPPCI, Direction: Increase, Fraction: c.PCIStep},
			},
		},
		{
			Name: "cog_short",
			Tier: TierEnergy,
			When: func(ctx Context) bool { return ctx.Obs.COGAvailable < c.COGMin },
			Adjust: []Adjustment{
				{Target: plant.SPCOGRatio, Direction: Decrease, Fraction: 0.10},
				{Target: plant.SPPCI, Direction: Increase, Fraction: 0.05},
			},
		},
		{
			Name: "o2_short",
			Tier: TierEnergy,
			When: func(ctx Context) bool {
				// O2 demand in Nm³/h from enrichment % of the hourly wind flow.
				required := ctx.Current.Get(plant.SPO2Enrichment, 0) / 100 *
					ctx.Current.Get(plant.SPWindVolume, 0) * 60
				return ctx.Obs.O2Available < required
			},
			Adjust: []Adjustment{
				{Target: plant.SPO2Enrichment, Direction: Decrease, Fraction: 0.10},
				{Target: plant.SPPCI, Direction: Increase, Fraction: 0.04},
			},
		},
		{
			Name: "peak_electricity",
			Tier: TierEconomic,
			When: func(ctx Context) bool { return ctx.Obs.PeakElectricity },
			Adjust: []Adjustment{
				{Target: plant.SPWindVolume, Direction: Decrease, Fraction: c.EconomicStep},
			},
		},
		{
			Name: "raise_production",
			Tier: TierEconomic,
			When: func(ctx Context) bool {
				return ctx.Obs.Gas[plant.GasBFG].SOC < c.SOCRelease
			},
			Adjust: []Adjustment{
				{Target: plant.SPWindVolume, Direction: Increase, Fraction: c.EconomicStep},
			},
		},
	}
}

// #endregion blast-furnace

// #region bof

// BOFRules builds the basic oxygen furnace hierarchy. The surge rule
// fires shortly before an oxygen blow and warns the BOFG holder agent
// so it can make room on the following step.
func BOFRules(c config.BOFConfig) []Rule {
	return []Rule{
		{
			Name: "holder_over_pressure",
			Tier: TierSafety,
			When: func(ctx Context) bool { return ctx.Obs.Gas[plant.GasBOFG].Pressure > c.PMax },
			Adjust: []Adjustment{
				{Target: plant.SPOxygen, Direction: Decrease, Fraction: c.SafetyStep},
			},
			Emit: &Emission{
				Type:      bus.TypeEmergencyThrottle,
				Recipient: plant.AgentGHBOFG,
				Urgency:   bus.UrgencyCritical,
				Payload: func(ctx Context) map[string]float64 {
					return map[string]float64{"pressure": ctx.Obs.Gas[plant.GasBOFG].Pressure}
				},
			},
		},
		{
			Name: "surge_imminent",
			Tier: TierSafety,
			When: func(ctx Context) bool {
				return !ctx.Obs.Blowing && ctx.Obs.BlowCountdown <= c.SurgeLead
			},
			Emit: &Emission{
				Type:      bus.TypeSurgeWarning,
				Recipient: plant.AgentGHBOFG,
				Urgency:   bus.UrgencyHigh,
				Payload: func(ctx Context) map[string]float64 {
					return map[string]float64{
						"time_to_blow":  ctx.Obs.BlowCountdown,
						"expected_peak": c.SurgePeak,
						"duration":      c.BlowDuration,
						"holder_soc":    ctx.Obs.Gas[plant.GasBOFG].SOC,
					}
				},
			},
		},
		{
			Name: "upstream_emergency",
			Tier: TierSafety,
			When: func(ctx Context) bool { return ctx.HasMessage(bus.TypeEmergencyThrottle) },
			Adjust: []Adjustment{
				{Target: plant.SPOxygen, Direction: Decrease, Fraction: c.SafetyStep},
			},
		},
		{
			Name: "steel_temp_high",
			Tier: TierProcess,
			When: func(ctx Context) bool { return ctx.Obs.SteelTemp > c.TempTarget+c.TempBand },
			Adjust: []Adjustment{
				{Target: plant.SPOxygen, Direction: Decrease, Fraction: c.ProcessStep},
				{Target: plant.SPScrapSteel, Direction: Increase, Fraction: c.ScrapStep},
			},
		},
		{
			Name: "steel_temp_low",
			Tier: TierProcess,
			When: func(ctx Context) bool { return ctx.Obs.SteelTemp < c.TempTarget-c.TempBand },
			Adjust: []Adjustment{
				{Target: plant.SPOxygen, Direction: Increase, Fraction: c.ProcessStep},
			},
		},
		{
			Name: "holder_back_pressure",
			Tier: TierEnergy,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[plant.GasBOFG]
				return r.Supply > c.GasDesign*1.3 && r.Pressure > c.PHigh
			},
			Adjust: []Adjustment{
				{Target: plant.SPOxygen, Direction: Decrease, Fraction: c.SafetyStep},
			},
		},
	}
}

// #endregion bof

// #region coke-oven

// CokeOvenRules builds the coke oven hierarchy.
func CokeOvenRules(c config.CokeConfig) []Rule {
	nominal := 1.0
	return []Rule{
		{
			Name: "furnace_over_temp",
			Tier: TierSafety,
			When: func(ctx Context) bool { return ctx.Obs.FurnaceTemp > c.TempMax },
			Adjust: []Adjustment{
				{Target: plant.SPHeatingGas, Direction: Decrease, Fraction: c.SafetyStep},
			},
		},
		{
			Name: "furnace_under_temp",
			Tier: TierSafety,
			When: func(ctx Context) bool { return ctx.Obs.FurnaceTemp < c.TempMin },
			Adjust: []Adjustment{
				{Target: plant.SPHeatingGas, Direction: Increase, Fraction: c.SafetyStep},
			},
		},
		{
			Name: "temp_above_target",
			Tier: TierProcess,
			When: func(ctx Context) bool { return ctx.Obs.FurnaceTemp > c.TempTarget+c.TempBand },
			Adjust: []Adjustment{
				{Target: plant.SPHeatingGas, Direction: Decrease, Fraction: c.ProcessStep},
			},
		},
		{
			Name: "temp_below_target",
			Tier: TierProcess,
			When: func(ctx Context) bool { return ctx.Obs.FurnaceTemp < c.TempTarget-c.TempBand },
			Adjust: []Adjustment{
				{Target: plant.SPHeatingGas, Direction: Increase, Fraction: c.ProcessStep},
			},
		},
		{
			Name:    "cog_holder_full",
			Tier:    TierEnergy,
			When:    func(ctx Context) bool { return ctx.Obs.Gas[plant.GasCOG].SOC > c.SOCHigh },
			Release: func(ctx Context) bool { return ctx.Obs.Gas[plant.GasCOG].SOC < c.SOCRelease },
			Adjust: []Adjustment{
				{Target: plant.SPPushingRate, Direction: Decrease, Fraction: c.EnergyStep},
			},
		},
		{
			Name: "cog_holder_empty",
			Tier: TierEnergy,
			When: func(ctx Context) bool { return ctx.Obs.Gas[plant.GasCOG].SOC < c.SOCLow },
			Adjust: []Adjustment{
				{Target: plant.SPPushingRate, Direction: Increase, Fraction: 0.03},
			},
		},
		{
			Name: "normalize_pushing",
			Tier: TierEconomic,
			When: func(ctx Context) bool {
				soc := ctx.Obs.Gas[plant.GasCOG].SOC
				return soc > c.SOCLow && soc < c.SOCHigh &&
					ctx.Current.Get(plant.SPPushingRate, nominal) != nominal
			},
			Adjust: []Adjustment{
				{Target: plant.SPPushingRate, Absolute: &nominal},
			},
		},
	}
}

// #endregion coke-oven

// #region gas-holder

// GasHolderRules builds one holder agent's hierarchy. All rules act on
// the holder's consumption destinations; overflow/underflow signals
// raised by the dynamics on the previous step land in the safety tier
// here.
func GasHolderRules(gas plant.GasType, c config.HolderAgentConfig) []Rule {
	adjustAll := func(dir Direction, frac float64) []Adjustment {
		out := make([]Adjustment, 0, len(c.Destinations))
		for _, d := range c.Destinations {
			out = append(out, Adjustment{Target: d.Setpoint, Direction: dir, Fraction: frac})
		}
		return out
	}
	returnNominal := func() []Adjustment {
		out := make([]Adjustment, 0, len(c.Destinations))
		for _, d := range c.Destinations {
			nom := d.Nominal
			out = append(out, Adjustment{Target: d.Setpoint, Absolute: &nom})
		}
		return out
	}

	return []Rule{
		{
			Name:   "over_pressure_emergency",
			Tier:   TierSafety,
			When:   func(ctx Context) bool { return ctx.Obs.Gas[gas].Pressure > c.PEmergency },
			Adjust: adjustAll(Increase, c.EmergencyStep),
			Emit: &Emission{
				Type:      bus.TypeOverPressure,
				Recipient: plant.Broadcast,
				Urgency:   bus.UrgencyCritical,
				Payload: func(ctx Context) map[string]float64 {
					return map[string]float64{"pressure": ctx.Obs.Gas[gas].Pressure}
				},
			},
		},
		{
			Name: "prevent_spill",
			Tier: TierSafety,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[gas]
				return r.SOC > c.SOCCeil || r.Overflow > 0
			},
			Adjust: adjustAll(Increase, c.EmergencyStep),
		},
		{
			Name: "prevent_empty",
			Tier: TierSafety,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[gas]
				return r.SOC < c.SOCFloor || r.Underflow > 0
			},
			Adjust: adjustAll(Decrease, c.EmergencyStep),
		},
		{
			Name:   "surge_prepare",
			Tier:   TierSafety,
			When:   func(ctx Context) bool { return ctx.HasMessage(bus.TypeSurgeWarning) },
			Adjust: adjustAll(Decrease, c.SurgeStep),
		},
		{
			Name: "soc_high",
			Tier: TierEnergy,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[gas]
				return r.SOC > c.SOCHigh || r.Pressure > c.PHigh
			},
			Adjust: adjustAll(Increase, c.EnergyStep),
		},
		{
			Name: "soc_low",
			Tier: TierEnergy,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[gas]
				return r.SOC < c.SOCLow || r.Pressure < c.PLow
			},
			Adjust: adjustAll(Decrease, c.EnergyStep),
		},
		{
			Name: "return_to_nominal",
			Tier: TierEconomic,
			When: func(ctx Context) bool {
				r := ctx.Obs.Gas[gas]
				if r.SOC <= c.SOCLow || r.SOC >= c.SOCHigh || r.Pressure <= c.PLow || r.Pressure >= c.PHigh {
					return false
				}
				for _, d := range c.Destinations {
					if ctx.Current.Get(d.Setpoint, d.Nominal) != d.Nominal {
						return true
					}
				}
				return false
			},
			Adjust: returnNominal(),
		},
	}
}

// #endregion gas-holder
