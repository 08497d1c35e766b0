package recorder

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/oreforge/steelmas/internal/env"
	"github.com/oreforge/steelmas/internal/plant"
	"github.com/oreforge/steelmas/internal/reward"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "episodes.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testTransition(step int, total float64) Transition {
	obs := plant.Observation{
		Step: step,
		Si:   0.45,
		Gas:  make(map[plant.GasType]plant.HolderReading),
	}
	for _, g := range plant.GasTypes {
		obs.Gas[g] = plant.HolderReading{SOC: 0.5, Pressure: 12, Supply: 50000}
	}
	return Transition{
		Step:        step,
		Observation: obs,
		Actions: map[plant.AgentID]plant.Action{
			plant.AgentBF: plant.NewAction(plant.AgentBF, map[plant.Setpoint]float64{
				plant.SPWindVolume: 4000,
			}),
		},
		Reward: reward.Reward{
			Total:     total,
			Breakdown: reward.Breakdown{Production: total, Stability: 1, Efficiency: 1},
		},
		Info: env.StepInfo{Step: step},
	}
}

func TestEpisodeRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.BeginEpisode()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Record(id, testTransition(i, float64(i)*0.1)); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	ep, err := s.Episode(id)
	if err != nil {
		t.Fatalf("load episode: %v", err)
	}
	if len(ep.Steps) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(ep.Steps))
	}
	if ep.Steps[1].Step != 1 {
		t.Fatalf("transitions out of order: %d", ep.Steps[1].Step)
	}
	if ep.Steps[2].Observation.Gas[plant.GasBFG].SOC != 0.5 {
		t.Fatal("observation lost through the round trip")
	}
	if ep.Steps[2].Actions[plant.AgentBF].Setpoints[plant.SPWindVolume] != 4000 {
		t.Fatal("actions lost through the round trip")
	}
}

func TestMetricsFromStoredRewards(t *testing.T) {
	s := newTestStore(t)
	id, _ := s.BeginEpisode()
	for i, total := range []float64{0.2, 0.4, 0.6} {
		if err := s.Record(id, testTransition(i, total)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	m, err := s.Metrics(id)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.Steps != 3 {
		t.Fatalf("steps: %d", m.Steps)
	}
	if got := m.Mean; got < 0.399 || got > 0.401 {
		t.Fatalf("mean: %f", got)
	}
}

func TestFinishEpisodeStampsMetrics(t *testing.T) {
	s := newTestStore(t)
	id, _ := s.BeginEpisode()
	if err := s.Record(id, testTransition(0, 0.5)); err != nil {
		t.Fatalf("record: %v", err)
	}

	m, _ := s.Metrics(id)
	if err := s.FinishEpisode(id, m); err != nil {
		t.Fatalf("finish: %v", err)
	}

	ep, err := s.Episode(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ep.FinishedAt == nil {
		t.Fatal("finished_at not stamped")
	}
	if ep.Metrics == nil || ep.Metrics.Steps != 1 {
		t.Fatalf("metrics not stored: %+v", ep.Metrics)
	}
}

func TestFinishUnknownEpisode(t *testing.T) {
	s := newTestStore(t)
	if err := s.FinishEpisode("no-such-episode", reward.EpisodeMetrics{}); err == nil {
		t.Fatal("expected error for unknown episode")
	}
}

func TestListEpisodesMostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	first, _ := s.BeginEpisode()
	second, _ := s.BeginEpisode()

	ids, err := s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(ids))
	}
	_ = first
	_ = second
}

func TestExportJSON(t *testing.T) {
	s := newTestStore(t)
	id, _ := s.BeginEpisode()
	if err := s.Record(id, testTransition(0, 0.5)); err != nil {
		t.Fatalf("record: %v", err)
	}

	var buf bytes.Buffer
	if err := s.ExportJSON(id, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	var ep Episode
	if err := json.Unmarshal(buf.Bytes(), &ep); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if ep.ID != id || len(ep.Steps) != 1 {
		t.Fatalf("bad export: id=%s steps=%d", ep.ID, len(ep.Steps))
	}
}
