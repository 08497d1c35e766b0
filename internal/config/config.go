// Package config is the consumed-not-owned configuration surface of the
// coordination core: operating envelopes, rule thresholds and step
// fractions, holder matrices, reward weights, and the agent evaluation
// order. A config that fails Validate must abort startup before any
// step executes.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oreforge/steelmas/internal/gasnet"
	"github.com/oreforge/steelmas/internal/plant"
)

// #region blast-furnace

// BFConfig tunes the blast furnace agent.
type BFConfig struct {
	WindMin float64 `yaml:"wind_min"` // Nm³/min
	WindMax float64 `yaml:"wind_max"`
	O2Max   float64 `yaml:"o2_max"`   // %
	PCIMax  float64 `yaml:"pci_max"`  // kg/t HM
	TempMax float64 `yaml:"temp_max"` // °C
	SiMax   float64 `yaml:"si_max"`   // %

	SiTarget float64 `yaml:"si_target"`
	SiBand   float64 `yaml:"si_band"`

	SOCHigh    float64 `yaml:"soc_high"`
	SOCLow     float64 `yaml:"soc_low"`
	SOCRelease float64 `yaml:"soc_release"` // hysteresis release for the high rule
	PHigh      float64 `yaml:"p_high"`      // kPa
	PLow       float64 `yaml:"p_low"`
	COGMin     float64 `yaml:"cog_min"` // Nm³/h, below this COG is short

	SafetyStep   float64 `yaml:"safety_step"`
	ProcessStep  float64 `yaml:"process_step"`
	EnergyStep   float64 `yaml:"energy_step"`
	PCIStep      float64 `yaml:"pci_step"`
	EconomicStep float64 `yaml:"economic_step"`

	Initial  map[plant.Setpoint]float64 `yaml:"initial"`
	Fallback map[plant.Setpoint]float64 `yaml:"fallback"`
}

// Envelope returns the blast furnace operating envelope.
func (c BFConfig) Envelope() plant.Envelope {
	return plant.Envelope{
		Order: []plant.Setpoint{plant.SPWindVolume, plant.SPO2Enrichment, plant.SPPCI, plant.SPCOGRatio},
		Ranges: map[plant.Setpoint]plant.Range{
			plant.SPWindVolume:   {Min: c.WindMin, Max: c.WindMax, Unit: "Nm³/min"},
			plant.SPO2Enrichment: {Min: 0, Max: c.O2Max, Unit: "%"},
			plant.SPPCI:          {Min: 0, Max: c.PCIMax, Unit: "kg/t HM"},
			plant.SPCOGRatio:     {Min: 0, Max: 1, Unit: ""},
		},
	}
}

// #endregion blast-furnace

// #region bof

// BOFConfig tunes the basic oxygen furnace agent.
type BOFConfig struct {
	O2Max     float64 `yaml:"o2_max"` // Nm³/h
	ScrapMax  float64 `yaml:"scrap_max"`
	PMax      float64 `yaml:"p_max"`      // kPa, hard pressure limit
	PHigh     float64 `yaml:"p_high"`     // kPa, holder back-pressure threshold
	GasDesign float64 `yaml:"gas_design"` // Nm³/h, design BOFG rate

	TempTarget float64 `yaml:"temp_target"` // °C
	TempBand   float64 `yaml:"temp_band"`

	BlowInterval float64 `yaml:"blow_interval"` // minutes between blows
	BlowDuration float64 `yaml:"blow_duration"` // minutes per blow
	SurgeLead    float64 `yaml:"surge_lead"`    // warn this many minutes ahead
	SurgePeak    float64 `yaml:"surge_peak"`    // expected BOFG peak, Nm³/h

	SafetyStep  float64 `yaml:"safety_step"`
	ProcessStep float64 `yaml:"process_step"`
	ScrapStep   float64 `yaml:"scrap_step"`

	Initial  map[plant.Setpoint]float64 `yaml:"initial"`
	Fallback map[plant.Setpoint]float64 `yaml:"fallback"`
}

// Envelope returns the BOF operating envelope.
func (c BOFConfig) Envelope() plant.Envelope {
	return plant.Envelope{
		Order: []plant.Setpoint{plant.SPOxygen, plant.SPScrapSteel},
		Ranges: map[plant.Setpoint]plant.Range{
			plant.SPOxygen:     {Min: 0, Max: c.O2Max, Unit: "Nm³/h"},
			plant.SPScrapSteel: {Min: 0, Max: c.ScrapMax, Unit: "t/batch"},
		},
	}
}

// #endregion bof

// #region coke-oven

// CokeConfig tunes the coke oven agent.
type CokeConfig struct {
	TempMax float64 `yaml:"temp_max"` // °C
	TempMin float64 `yaml:"temp_min"`

	TempTarget float64 `yaml:"temp_target"`
	TempBand   float64 `yaml:"temp_band"`

	HeatingGasMin  float64 `yaml:"heating_gas_min"` // Nm³/h
	HeatingGasMax  float64 `yaml:"heating_gas_max"`
	PushingRateMin float64 `yaml:"pushing_rate_min"`
	PushingRateMax float64 `yaml:"pushing_rate_max"`

	SOCHigh    float64 `yaml:"soc_high"`
	SOCLow     float64 `yaml:"soc_low"`
	SOCRelease float64 `yaml:"soc_release"`

	SafetyStep  float64 `yaml:"safety_step"`
	ProcessStep float64 `yaml:"process_step"`
	EnergyStep  float64 `yaml:"energy_step"`

	Initial  map[plant.Setpoint]float64 `yaml:"initial"`
	Fallback map[plant.Setpoint]float64 `yaml:"fallback"`
}

// Envelope returns the coke oven operating envelope.
func (c CokeConfig) Envelope() plant.Envelope {
	return plant.Envelope{
		Order: []plant.Setpoint{plant.SPHeatingGas, plant.SPPushingRate},
		Ranges: map[plant.Setpoint]plant.Range{
			plant.SPHeatingGas:  {Min: c.HeatingGasMin, Max: c.HeatingGasMax, Unit: "Nm³/h"},
			plant.SPPushingRate: {Min: c.PushingRateMin, Max: c.PushingRateMax, Unit: ""},
		},
	}
}

// #endregion coke-oven

// #region holder

// HolderConfig parameterizes one gas holder's dynamics.
type HolderConfig struct {
	Capacity     float64     `yaml:"capacity"` // Nm³
	A            [][]float64 `yaml:"a"`
	B            [][]float64 `yaml:"b"`
	C            [][]float64 `yaml:"c"`
	X0           []float64   `yaml:"x0"`
	PressureMin  float64     `yaml:"pressure_min"`  // kPa
	PressureSpan float64     `yaml:"pressure_span"` // kPa
}

// Params converts to the dynamics model's parameter set.
func (c HolderConfig) Params() gasnet.Params {
	return gasnet.Params{
		A: c.A, B: c.B, C: c.C, X0: c.X0,
		Capacity:     c.Capacity,
		PressureMin:  c.PressureMin,
		PressureSpan: c.PressureSpan,
	}
}

// HolderAgentConfig tunes one gas-holder agent's rules and envelope.
type HolderAgentConfig struct {
	SOCHigh    float64 `yaml:"soc_high"`
	SOCLow     float64 `yaml:"soc_low"`
	SOCFloor   float64 `yaml:"soc_floor"` // safety: prevent empty
	SOCCeil    float64 `yaml:"soc_ceil"`  // safety: prevent spill
	PHigh      float64 `yaml:"p_high"`
	PLow       float64 `yaml:"p_low"`
	PEmergency float64 `yaml:"p_emergency"`

	EmergencyStep float64 `yaml:"emergency_step"`
	EnergyStep    float64 `yaml:"energy_step"`
	SurgeStep     float64 `yaml:"surge_step"`

	// Destination setpoints with their intervals, nominals, and
	// allocation priorities (higher wins when supply is short).
	Destinations []DestinationConfig `yaml:"destinations"`

	Fallback map[plant.Setpoint]float64 `yaml:"fallback"`
}

// DestinationConfig declares one consumption destination.
type DestinationConfig struct {
	Setpoint plant.Setpoint `yaml:"setpoint"`
	Min      float64        `yaml:"min"`
	Max      float64        `yaml:"max"`
	Nominal  float64        `yaml:"nominal"`
	Priority int            `yaml:"priority"`
}

// Envelope returns the holder agent's operating envelope.
func (c HolderAgentConfig) Envelope() plant.Envelope {
	e := plant.Envelope{Ranges: make(map[plant.Setpoint]plant.Range, len(c.Destinations))}
	for _, d := range c.Destinations {
		e.Order = append(e.Order, d.Setpoint)
		e.Ranges[d.Setpoint] = plant.Range{Min: d.Min, Max: d.Max, Unit: "Nm³/h"}
	}
	return e
}

// Initial returns the nominal setpoint table.
func (c HolderAgentConfig) Initial() map[plant.Setpoint]float64 {
	out := make(map[plant.Setpoint]float64, len(c.Destinations))
	for _, d := range c.Destinations {
		out[d.Setpoint] = d.Nominal
	}
	return out
}

// #endregion holder

// #region reward

// RewardConfig holds the reward weights and score shaping constants.
type RewardConfig struct {
	ProductionWeight float64 `yaml:"production_weight"`
	StabilityWeight  float64 `yaml:"stability_weight"`
	EfficiencyWeight float64 `yaml:"efficiency_weight"`

	BFGMaxSupply    float64 `yaml:"bfg_max_supply"` // Nm³/h normalization
	SOCLow          float64 `yaml:"soc_low"`
	SOCHigh         float64 `yaml:"soc_high"`
	UtilizationLow  float64 `yaml:"utilization_low"`
	UtilizationHigh float64 `yaml:"utilization_high"`
}

// #endregion reward

// #region config

// Config is the full configuration surface.
type Config struct {
	TimestepMinutes  float64         `yaml:"timestep_minutes"`
	AgentOrder       []plant.AgentID `yaml:"agent_order"`
	UrgencyThreshold int             `yaml:"urgency_threshold"` // bus.Urgency level

	// OxygenSupply is the oxygen plant output shared by the furnaces,
	// Nm³/h. PeakStart/PeakEnd bound the expensive-electricity window
	// in minutes of day.
	OxygenSupply float64 `yaml:"oxygen_supply"`
	PeakStart    float64 `yaml:"peak_start"`
	PeakEnd      float64 `yaml:"peak_end"`

	BF       BFConfig   `yaml:"blast_furnace"`
	BOF      BOFConfig  `yaml:"bof"`
	CokeOven CokeConfig `yaml:"coke_oven"`

	Holders      map[plant.GasType]HolderConfig      `yaml:"holders"`
	HolderAgents map[plant.GasType]HolderAgentConfig `yaml:"holder_agents"`

	Reward RewardConfig `yaml:"reward"`
}

// Load reads a YAML file over the defaults, then validates.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the whole surface. Any error here is fatal at
// initialization; the core refuses to run on an invalid configuration.
func (c Config) Validate() error {
	if c.TimestepMinutes <= 0 {
		return fmt.Errorf("config: timestep must be positive")
	}
	if c.OxygenSupply <= 0 {
		return fmt.Errorf("config: oxygen supply must be positive")
	}
	if len(c.AgentOrder) != 6 {
		return fmt.Errorf("config: agent order must name all 6 agents, got %d", len(c.AgentOrder))
	}
	seen := make(map[plant.AgentID]bool)
	for _, a := range c.AgentOrder {
		if seen[a] {
			return fmt.Errorf("config: duplicate agent %q in order", a)
		}
		seen[a] = true
	}
	for _, env := range []plant.Envelope{c.BF.Envelope(), c.BOF.Envelope(), c.CokeOven.Envelope()} {
		if err := env.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, g := range plant.GasTypes {
		hc, ok := c.Holders[g]
		if !ok {
			return fmt.Errorf("config: no holder parameters for gas %q", g)
		}
		if err := hc.Params().Validate(); err != nil {
			return fmt.Errorf("config: holder %q: %w", g, err)
		}
		ac, ok := c.HolderAgents[g]
		if !ok {
			return fmt.Errorf("config: no holder agent for gas %q", g)
		}
		if err := ac.Envelope().Validate(); err != nil {
			return fmt.Errorf("config: holder agent %q: %w", g, err)
		}
		if ac.SOCLow >= ac.SOCHigh {
			return fmt.Errorf("config: holder agent %q: soc_low %.2f >= soc_high %.2f", g, ac.SOCLow, ac.SOCHigh)
		}
		// The scalar input gain folds the timestep and capacity in, so
		// overriding the timestep without re-deriving B silently runs
		// the dynamics at the wrong rate. Catch the mismatch here.
		if len(hc.B) == 1 && len(hc.B[0]) == 1 {
			want := c.TimestepMinutes / (60 * hc.Capacity)
			if math.Abs(hc.B[0][0]-want) > 1e-12*want {
				return fmt.Errorf("config: holder %q: B %.6g does not match timestep %.4g min over capacity %.4g (want %.6g)",
					g, hc.B[0][0], c.TimestepMinutes, hc.Capacity, want)
			}
		}
	}
	wsum := c.Reward.ProductionWeight + c.Reward.StabilityWeight + c.Reward.EfficiencyWeight
	if math.Abs(wsum-1.0) > 1e-9 {
		return fmt.Errorf("config: reward weights sum to %.4f, want 1", wsum)
	}
	return nil
}

// #endregion config
