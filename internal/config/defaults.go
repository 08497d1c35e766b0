package config

import "github.com/oreforge/steelmas/internal/plant"

// #region defaults

// Default returns the built-in configuration. The thresholds and step
// fractions are the empirically tuned plant values; the holder B
// entries fold the one-minute timestep and holder capacity into the
// net-flow input (ΔSOC = netflow·Δt/capacity with netflow in Nm³/h).
func Default() Config {
	return Config{
		TimestepMinutes:  1.0,
		UrgencyThreshold: 1, // bus.UrgencyHigh and above are published
		OxygenSupply:     80000,
		PeakStart:        600, // 10:00
		PeakEnd:          720, // 12:00
		AgentOrder: []plant.AgentID{
			plant.AgentBF, plant.AgentBOF, plant.AgentCokeOven,
			plant.AgentGHBFG, plant.AgentGHBOFG, plant.AgentGHCOG,
		},
		BF: BFConfig{
			WindMin: 1000, WindMax: 8000,
			O2Max: 6.0, PCIMax: 200,
			TempMax: 1600, SiMax: 0.8,
			SiTarget: 0.45, SiBand: 0.03,
			SOCHigh: 0.85, SOCLow: 0.25, SOCRelease: 0.75,
			PHigh: 14.0, PLow: 9.0, COGMin: 10000,
			SafetyStep: 0.20, ProcessStep: 0.10,
			EnergyStep: 0.15, PCIStep: 0.12, EconomicStep: 0.05,
			Initial: map[plant.Setpoint]float64{
				plant.SPWindVolume:   4000,
				plant.SPO2Enrichment: 3.5,
				plant.SPPCI:          150,
				plant.SPCOGRatio:     0.2,
			},
			Fallback: map[plant.Setpoint]float64{
				plant.SPWindVolume:   3000,
				plant.SPO2Enrichment: 0,
				plant.SPPCI:          100,
				plant.SPCOGRatio:     0,
			},
		},
		BOF: BOFConfig{
			O2Max: 60000, ScrapMax: 30, PMax: 15.0,
			PHigh: 14.0, GasDesign: 50000,
			TempTarget: 1650, TempBand: 20,
			BlowInterval: 30, BlowDuration: 18,
			SurgeLead: 2.0, SurgePeak: 60000,
			SafetyStep: 0.10, ProcessStep: 0.03, ScrapStep: 0.02,
			Initial: map[plant.Setpoint]float64{
				plant.SPOxygen:     45000,
				plant.SPScrapSteel: 20,
			},
			Fallback: map[plant.Setpoint]float64{
				plant.SPOxygen:     20000,
				plant.SPScrapSteel: 20,
			},
		},
		CokeOven: CokeConfig{
			TempMax: 1400, TempMin: 1000,
			TempTarget: 1200, TempBand: 20,
			HeatingGasMin: 5000, HeatingGasMax: 25000,
			PushingRateMin: 0.7, PushingRateMax: 1.2,
			SOCHigh: 0.85, SOCLow: 0.25, SOCRelease: 0.75,
			SafetyStep: 0.10, ProcessStep: 0.03, EnergyStep: 0.05,
			Initial: map[plant.Setpoint]float64{
				plant.SPHeatingGas:  15000,
				plant.SPPushingRate: 1.0,
			},
			Fallback: map[plant.Setpoint]float64{
				plant.SPHeatingGas:  10000,
				plant.SPPushingRate: 0.8,
			},
		},
		Holders: map[plant.GasType]HolderConfig{
			plant.GasBFG: {
				Capacity:    400000,
				A:           [][]float64{{0.994}},
				B:           [][]float64{{1.0 / 60 / 400000}},
				C:           [][]float64{{1.0}},
				X0:          []float64{0.5},
				PressureMin: 8.0, PressureSpan: 8.0,
			},
			plant.GasBOFG: {
				Capacity:    150000,
				A:           [][]float64{{0.999}},
				B:           [][]float64{{1.0 / 60 / 150000}},
				C:           [][]float64{{1.0}},
				X0:          []float64{0.5},
				PressureMin: 8.0, PressureSpan: 8.0,
			},
			plant.GasCOG: {
				Capacity:    100000,
				A:           [][]float64{{1.0}},
				B:           [][]float64{{1.0 / 60 / 100000}},
				C:           [][]float64{{1.0}},
				X0:          []float64{0.5},
				PressureMin: 8.0, PressureSpan: 8.0,
			},
		},
		HolderAgents: map[plant.GasType]HolderAgentConfig{
			plant.GasBFG: {
				SOCHigh: 0.85, SOCLow: 0.25,
				SOCFloor: 0.05, SOCCeil: 0.95,
				PHigh: 14.0, PLow: 9.0, PEmergency: 16.0,
				EmergencyStep: 0.20, EnergyStep: 0.15, SurgeStep: 0.20,
				Destinations: []DestinationConfig{
					{Setpoint: plant.SPToPowerPlant, Min: 10000, Max: 80000, Nominal: 50000, Priority: 1},
					{Setpoint: plant.SPToHeating, Min: 5000, Max: 50000, Nominal: 30000, Priority: 2},
				},
				Fallback: map[plant.Setpoint]float64{
					plant.SPToPowerPlant: 40000,
					plant.SPToHeating:    20000,
				},
			},
			plant.GasBOFG: {
				SOCHigh: 0.85, SOCLow: 0.25,
				SOCFloor: 0.05, SOCCeil: 0.95,
				PHigh: 14.0, PLow: 9.0, PEmergency: 16.0,
				EmergencyStep: 0.20, EnergyStep: 0.15, SurgeStep: 0.20,
				Destinations: []DestinationConfig{
					{Setpoint: plant.SPToPowerPlant, Min: 5000, Max: 40000, Nominal: 20000, Priority: 1},
					{Setpoint: plant.SPToHeating, Min: 3000, Max: 20000, Nominal: 10000, Priority: 2},
				},
				Fallback: map[plant.Setpoint]float64{
					plant.SPToPowerPlant: 15000,
					plant.SPToHeating:    8000,
				},
			},
			plant.GasCOG: {
				SOCHigh: 0.85, SOCLow: 0.25,
				SOCFloor: 0.05, SOCCeil: 0.95,
				PHigh: 14.0, PLow: 9.0, PEmergency: 16.0,
				EmergencyStep: 0.20, EnergyStep: 0.15, SurgeStep: 0.20,
				Destinations: []DestinationConfig{
					{Setpoint: plant.SPToHeating, Min: 2000, Max: 15000, Nominal: 8000, Priority: 2},
					{Setpoint: plant.SPToBF, Min: 1000, Max: 10000, Nominal: 5000, Priority: 3},
				},
				Fallback: map[plant.Setpoint]float64{
					plant.SPToHeating: 6000,
					plant.SPToBF:      3000,
				},
			},
		},
		Reward: RewardConfig{
			ProductionWeight: 0.4,
			StabilityWeight:  0.4,
			EfficiencyWeight: 0.2,
			BFGMaxSupply:     140000,
			SOCLow:           0.25,
			SOCHigh:          0.85,
			UtilizationLow:   0.7,
			UtilizationHigh:  0.9,
		},
	}
}

// #endregion defaults
