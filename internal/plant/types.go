package plant

// #region process-id

// ProcessID identifies one production process in the plant chain.
type ProcessID string

const (
	ProcessBlastFurnace ProcessID = "blast_furnace"
	ProcessBOF          ProcessID = "bof"
	ProcessCokeOven     ProcessID = "coke_oven"
	ProcessGasHolder    ProcessID = "gas_holder"
)

// #endregion process-id

// #region gas-type

// GasType identifies a by-product gas with its own holder.
type GasType string

const (
	GasBFG  GasType = "bfg"  // blast furnace gas
	GasBOFG GasType = "bofg" // basic oxygen furnace gas
	GasCOG  GasType = "cog"  // coke oven gas
)

// GasTypes is the fixed iteration order for all per-gas loops.
// Map iteration order is not deterministic in Go; every component
// that walks per-gas data must range over this slice instead.
var GasTypes = []GasType{GasBFG, GasBOFG, GasCOG}

// #endregion gas-type

// #region agent-id

// AgentID identifies one controller agent.
type AgentID string

const (
	AgentBF       AgentID = "bf"
	AgentBOF      AgentID = "bof"
	AgentCokeOven AgentID = "coke_oven"
	AgentGHBFG    AgentID = "gh_bfg"
	AgentGHBOFG   AgentID = "gh_bofg"
	AgentGHCOG    AgentID = "gh_cog"

	// Broadcast is the recipient for messages addressed to every agent.
	Broadcast AgentID = "all"
)

// HolderAgent returns the agent that owns the holder for the given gas.
func HolderAgent(g GasType) AgentID {
	switch g {
	case GasBFG:
		return AgentGHBFG
	case GasBOFG:
		return AgentGHBOFG
	default:
		return AgentGHCOG
	}
}

// HolderGas is the inverse of HolderAgent. The second return is false
// for non-holder agents.
func HolderGas(a AgentID) (GasType, bool) {
	switch a {
	case AgentGHBFG:
		return GasBFG, true
	case AgentGHBOFG:
		return GasBOFG, true
	case AgentGHCOG:
		return GasCOG, true
	}
	return "", false
}

// #endregion agent-id

// #region setpoint

// Setpoint names one controlled variable of an agent.
type Setpoint string

const (
	// Blast furnace
	SPWindVolume   Setpoint = "wind_volume"   // Nm³/min
	SPO2Enrichment Setpoint = "o2_enrichment" // %
	SPPCI          Setpoint = "pci"           // kg/t HM
	SPCOGRatio     Setpoint = "cog_ratio"     // fraction of heating gas

	// BOF
	SPOxygen     Setpoint = "oxygen"      // Nm³/h
	SPScrapSteel Setpoint = "scrap_steel" // t/batch

	// Coke oven
	SPHeatingGas  Setpoint = "heating_gas"  // Nm³/h
	SPPushingRate Setpoint = "pushing_rate" // relative to nominal

	// Gas holder consumption destinations
	SPToPowerPlant Setpoint = "to_power_plant" // Nm³/h
	SPToHeating    Setpoint = "to_heating"     // Nm³/h
	SPToBF         Setpoint = "to_bf"          // Nm³/h
)

// #endregion setpoint
