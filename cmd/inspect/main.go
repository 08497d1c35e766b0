package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/oreforge/steelmas/internal/recorder"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to steelmas.db")
	last := flag.Int("last", 20, "show N most recent episodes")
	episodeID := flag.String("episode", "", "show single episode detail")
	export := flag.String("export", "", "write the episode as JSON to this path")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/steelmas.db [--last N] [--episode id] [--export file.json] [--json]")
		os.Exit(2)
	}

	store, err := recorder.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *episodeID != "" {
		if err := runDetailMode(store, *episodeID, *export, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	EpisodeID  string  `json:"episode_id"`
	Steps      int     `json:"steps"`
	Mean       float64 `json:"mean_reward"`
	Cumulative float64 `json:"cumulative_reward"`
}

func runListMode(store *recorder.Store, last int, jsonOut bool) error {
	ids, err := store.ListEpisodes(last)
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(ids))
	for _, id := range ids {
		m, err := store.Metrics(id)
		if err != nil {
			return err
		}
		rows = append(rows, listRow{
			EpisodeID:  id,
			Steps:      m.Steps,
			Mean:       m.Mean,
			Cumulative: m.Cumulative,
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-38s %8s %12s %12s\n", "EPISODE", "STEPS", "MEAN", "CUMULATIVE")
	for _, r := range rows {
		fmt.Printf("%-38s %8d %12.4f %12.2f\n", r.EpisodeID, r.Steps, r.Mean, r.Cumulative)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *recorder.Store, episodeID, export string, jsonOut bool) error {
	if export != "" {
		f, err := os.Create(export)
		if err != nil {
			return fmt.Errorf("create %s: %w", export, err)
		}
		defer f.Close()
		if err := store.ExportJSON(episodeID, f); err != nil {
			return err
		}
		fmt.Printf("episode %s exported to %s\n", episodeID, export)
		return nil
	}

	m, err := store.Metrics(episodeID)
	if err != nil {
		return err
	}
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	fmt.Printf("episode %s\n", episodeID)
	fmt.Printf("  steps      %d\n", m.Steps)
	fmt.Printf("  cumulative %.4f\n", m.Cumulative)
	fmt.Printf("  mean       %.4f (std %.4f)\n", m.Mean, m.Std)
	fmt.Printf("  min/max    %.4f / %.4f\n", m.Min, m.Max)
	return nil
}

// #endregion detail-mode
