package twin

import (
	"fmt"

	"github.com/oreforge/steelmas/internal/plant"
)

// #region reference

// Reference is the built-in deterministic process model set. The
// algebra is a coarse steady-state fit of the plant, good enough to
// exercise the coordination loop without an external model service.
// Identical inputs always produce identical outputs.
type Reference struct{}

// NewReference returns the built-in model set.
func NewReference() *Reference { return &Reference{} }

// Invoke dispatches on the process and evaluates its model.
func (r *Reference) Invoke(process plant.ProcessID, in Record) (Record, error) {
	switch process {
	case plant.ProcessBlastFurnace:
		return r.blastFurnace(in), nil
	case plant.ProcessBOF:
		return r.bof(in), nil
	case plant.ProcessCokeOven:
		return r.cokeOven(in), nil
	}
	return nil, fmt.Errorf("twin: unknown process %q", process)
}

func (r *Reference) blastFurnace(in Record) Record {
	wind := in[KeyWindVolume]
	o2 := in[KeyO2Enrichment]
	pci := in[KeyPCI]
	// Silicon tracks the thermal state: more coal injection and more
	// oxygen enrichment both push it up.
	return Record{
		KeyPigIronRate:  wind / 20,
		KeyHotMetalTemp: 1380 + pci*0.8 + o2*12,
		KeySi:           0.20 + o2*0.03 + pci*0.001,
		KeyBFGRate:      wind * 25,
	}
}

func (r *Reference) bof(in Record) Record {
	oxygen := in[KeyOxygen]
	scrap := in[KeyScrapSteel]
	phase := in[KeyBlowPhase]
	return Record{
		KeyLiquidSteel: phase * (scrap*5 + oxygen/500),
		KeySteelTemp:   1630 + oxygen/1500 - scrap,
		KeyBOFGRate:    phase * oxygen * 1.25,
	}
}

func (r *Reference) cokeOven(in Record) Record {
	gas := in[KeyHeatingGas]
	push := in[KeyPushingRate]
	return Record{
		KeyFurnaceTemp: 900 + gas/50,
		KeyCokeRate:    40 * push,
		KeyCOGRate:     20000 * push,
	}
}

// #endregion reference
