package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oreforge/steelmas/internal/plant"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejectsBadTimestep(t *testing.T) {
	cfg := Default()
	cfg.TimestepMinutes = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero timestep")
	}
}

func TestValidateRejectsDuplicateAgents(t *testing.T) {
	cfg := Default()
	cfg.AgentOrder[1] = cfg.AgentOrder[0]
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for duplicate agent in order")
	}
}

func TestValidateRejectsMissingHolder(t *testing.T) {
	cfg := Default()
	delete(cfg.Holders, plant.GasCOG)
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing holder parameters")
	}
}

func TestValidateRejectsBadHolderMatrix(t *testing.T) {
	cfg := Default()
	h := cfg.Holders[plant.GasBFG]
	h.B = [][]float64{{1}, {2}}
	cfg.Holders[plant.GasBFG] = h
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for mismatched holder matrices")
	}
}

func TestValidateRejectsInvertedSOCBand(t *testing.T) {
	cfg := Default()
	a := cfg.HolderAgents[plant.GasBFG]
	a.SOCLow = 0.9
	cfg.HolderAgents[plant.GasBFG] = a
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for soc_low above soc_high")
	}
}

func TestValidateRejectsBadRewardWeights(t *testing.T) {
	cfg := Default()
	cfg.Reward.ProductionWeight = 0.9
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for weights not summing to 1")
	}
}

func TestValidateRejectsTimestepBMismatch(t *testing.T) {
	// The default B matrices are derived for a 1-minute step; changing
	// the timestep alone would run the holders at half speed.
	cfg := Default()
	cfg.TimestepMinutes = 2
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for timestep changed without re-deriving B")
	}

	for _, g := range plant.GasTypes {
		h := cfg.Holders[g]
		h.B = [][]float64{{cfg.TimestepMinutes / (60 * h.Capacity)}}
		cfg.Holders[g] = h
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("consistent timestep and B must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("oxygen_supply: 90000\nblast_furnace:\n  wind_max: 7000\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OxygenSupply != 90000 {
		t.Fatalf("oxygen_supply override lost: %f", cfg.OxygenSupply)
	}
	if cfg.BF.WindMax != 7000 {
		t.Fatalf("wind_max override lost: %f", cfg.BF.WindMax)
	}
	// Untouched fields keep their defaults.
	if cfg.BF.WindMin != 1000 {
		t.Fatalf("default wind_min lost: %f", cfg.BF.WindMin)
	}
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("timestep_minutes: -1\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
