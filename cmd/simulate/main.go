package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/oreforge/steelmas/internal/config"
	"github.com/oreforge/steelmas/internal/env"
	"github.com/oreforge/steelmas/internal/recorder"
	"github.com/oreforge/steelmas/internal/reward"
	"github.com/oreforge/steelmas/internal/twin"
	"github.com/oreforge/steelmas/internal/twinrpc"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply if empty)")
	steps := flag.Int("steps", 1440, "number of coordination steps to run")
	dbPath := flag.String("db", envOr("STEELMAS_DB", "steelmas.db"), "path to the episode database")
	twinAddr := flag.String("twin", envOr("TWIN_ADDR", ""), "gRPC address of an external model service (built-in models if empty)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	var model twin.Twin = twin.NewReference()
	if *twinAddr != "" {
		client, err := twinrpc.NewClient(*twinAddr)
		if err != nil {
			log.Fatalf("connect to model service at %s: %v", *twinAddr, err)
		}
		defer client.Close()
		model = twinrpc.NewRemote(client, 10*time.Second)
	}

	environment, err := env.New(cfg, model)
	if err != nil {
		log.Fatalf("build environment: %v", err)
	}

	store, err := recorder.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("open episode store: %v", err)
	}
	defer store.Close()

	episodeID, err := store.BeginEpisode()
	if err != nil {
		log.Fatalf("begin episode: %v", err)
	}
	log.Printf("[SIM] episode %s: %d steps, db %s", episodeID, *steps, *dbPath)

	if err := run(environment, store, episodeID, *steps); err != nil {
		log.Fatalf("episode %s: %v", episodeID, err)
	}

	metrics, err := store.Metrics(episodeID)
	if err != nil {
		log.Fatalf("episode metrics: %v", err)
	}
	if err := store.FinishEpisode(episodeID, metrics); err != nil {
		log.Fatalf("finish episode: %v", err)
	}

	fmt.Printf("episode %s finished\n", episodeID)
	fmt.Printf("  steps      %d\n", metrics.Steps)
	fmt.Printf("  cumulative %.4f\n", metrics.Cumulative)
	fmt.Printf("  mean       %.4f (std %.4f)\n", metrics.Mean, metrics.Std)
	fmt.Printf("  min/max    %.4f / %.4f\n", metrics.Min, metrics.Max)
}

// #endregion main

// #region run

func run(environment *env.Environment, store *recorder.Store, episodeID string, steps int) error {
	var totals []float64
	for i := 0; i < steps; i++ {
		obs, rew, info, err := environment.Step()
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		totals = append(totals, rew.Total)

		t := recorder.Transition{
			Step:        info.Step,
			Observation: obs,
			Actions:     info.Actions,
			Reward:      rew,
			Info:        info,
		}
		if err := store.Record(episodeID, t); err != nil {
			return fmt.Errorf("record step %d: %w", i, err)
		}

		if (i+1)%60 == 0 {
			m := reward.Summarize(totals)
			log.Printf("[SIM] step %d: mean reward %.4f, cumulative %.2f", i+1, m.Mean, m.Cumulative)
		}
	}
	return nil
}

// #endregion run

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
