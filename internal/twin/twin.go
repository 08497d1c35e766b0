// Package twin defines the boundary to the process models. The core
// never simulates metallurgy itself; it hands each process its actuated
// setpoints as a flat keyed record and reads process outputs back the
// same way. Implementations can be the built-in reference models or a
// remote service.
package twin

import (
	"github.com/oreforge/steelmas/internal/plant"
)

// #region record

// Record is the flat exchange format at the twin boundary. Keys are
// stable wire names; values carry the units documented on the key
// constants.
type Record map[string]float64

// Clone returns a copy safe to hand across the boundary.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// #endregion record

// #region keys

// Input keys.
const (
	KeyWindVolume   = "wind_volume"   // Nm³/min
	KeyO2Enrichment = "o2_enrichment" // %
	KeyPCI          = "pci"           // kg/t HM
	KeyCOGRatio     = "cog_ratio"
	KeyCOGAvailable = "cog_available" // Nm³/h

	KeyOxygen     = "oxygen"      // Nm³/h
	KeyScrapSteel = "scrap_steel" // t/batch
	KeyBlowPhase  = "blow_phase"  // 0 outside a blow, 1 during

	KeyHeatingGas  = "heating_gas" // Nm³/h
	KeyPushingRate = "pushing_rate"
)

// Output keys.
const (
	KeyPigIronRate  = "pig_iron_rate"  // t/h
	KeyHotMetalTemp = "hot_metal_temp" // °C
	KeySi           = "si"             // %
	KeyBFGRate      = "bfg_rate"       // Nm³/h

	KeyLiquidSteel = "liquid_steel" // t/batch
	KeySteelTemp   = "steel_temp"   // °C
	KeyBOFGRate    = "bofg_rate"    // Nm³/h

	KeyFurnaceTemp = "furnace_temp" // °C
	KeyCokeRate    = "coke_rate"    // t/h
	KeyCOGRate     = "cog_rate"     // Nm³/h
)

// #endregion keys

// #region interface

// Twin evaluates one process model for one timestep.
type Twin interface {
	Invoke(process plant.ProcessID, in Record) (Record, error)
}

// #endregion interface
