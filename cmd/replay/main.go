package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/oreforge/steelmas/internal/config"
	"github.com/oreforge/steelmas/internal/env"
	"github.com/oreforge/steelmas/internal/recorder"
	"github.com/oreforge/steelmas/internal/twin"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the episode database (DB mode)")
	episodeID := flag.String("episode", "", "episode to replay (latest if empty)")
	selfCheck := flag.Int("selfcheck", 0, "run two fresh episodes of N steps and compare (no DB)")
	flag.Parse()

	if (*dbPath == "" && *selfCheck == 0) || (*dbPath != "" && *selfCheck != 0) {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/steelmas.db [--episode id]")
		fmt.Fprintln(os.Stderr, "       replay --selfcheck N")
		os.Exit(2)
	}

	var exitCode int
	if *selfCheck > 0 {
		exitCode = runSelfCheck(*selfCheck)
	} else {
		exitCode = runDBMode(*dbPath, *episodeID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

// runDBMode re-runs a recorded episode against the built-in models and
// compares the reward series step by step. Any divergence means the
// coordination core is no longer deterministic, or its behavior
// changed since the episode was recorded.
func runDBMode(dbPath, episodeID string) int {
	store, err := recorder.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 1
	}
	defer store.Close()

	if episodeID == "" {
		ids, err := store.ListEpisodes(1)
		if err != nil || len(ids) == 0 {
			fmt.Fprintf(os.Stderr, "no episodes found: %v\n", err)
			return 1
		}
		episodeID = ids[0]
	}

	recorded, err := store.Rewards(episodeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load episode %s: %v\n", episodeID, err)
		return 1
	}
	if len(recorded) == 0 {
		fmt.Fprintf(os.Stderr, "episode %s has no transitions\n", episodeID)
		return 1
	}

	replayed, err := runEpisode(len(recorded))
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 1
	}

	divergences := 0
	for i := range recorded {
		if math.Abs(recorded[i]-replayed[i]) > 1e-9 {
			if divergences == 0 {
				fmt.Printf("DIVERGED at step %d: recorded %.9f, replayed %.9f\n", i, recorded[i], replayed[i])
			}
			divergences++
		}
	}
	if divergences > 0 {
		fmt.Printf("episode %s: %d/%d steps diverged\n", episodeID, divergences, len(recorded))
		return 1
	}
	fmt.Printf("episode %s: %d steps replayed identically\n", episodeID, len(recorded))
	return 0
}

// #endregion db-mode

// #region self-check

// runSelfCheck runs two fresh episodes and verifies the reward series
// match exactly.
func runSelfCheck(steps int) int {
	a, err := runEpisode(steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "first run: %v\n", err)
		return 1
	}
	b, err := runEpisode(steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "second run: %v\n", err)
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			fmt.Printf("DIVERGED at step %d: %.9f vs %.9f\n", i, a[i], b[i])
			return 1
		}
	}
	fmt.Printf("selfcheck: %d steps, both runs identical\n", steps)
	return 0
}

func runEpisode(steps int) ([]float64, error) {
	environment, err := env.New(config.Default(), twin.NewReference())
	if err != nil {
		return nil, fmt.Errorf("build environment: %w", err)
	}
	out := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		_, rew, _, err := environment.Step()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, rew.Total)
	}
	return out, nil
}

// #endregion self-check
