// Package recorder persists episodes to SQLite for later inspection
// and replay. Every transition is stored with its full observation,
// the per-agent actions, the reward breakdown, and the step
// diagnostics.
package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/oreforge/steelmas/internal/env"
	"github.com/oreforge/steelmas/internal/plant"
	"github.com/oreforge/steelmas/internal/reward"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS episodes (
	episode_id   TEXT PRIMARY KEY,
	started_at   TEXT NOT NULL,
	finished_at  TEXT,
	steps        INTEGER NOT NULL DEFAULT 0,
	metrics_json TEXT
);

CREATE TABLE IF NOT EXISTS transitions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	episode_id       TEXT NOT NULL,
	step             INTEGER NOT NULL,
	observation_json TEXT NOT NULL,
	actions_json     TEXT NOT NULL,
	reward           REAL NOT NULL,
	breakdown_json   TEXT NOT NULL,
	info_json        TEXT NOT NULL,
	created_at       TEXT NOT NULL,
	FOREIGN KEY (episode_id) REFERENCES episodes(episode_id)
);

CREATE INDEX IF NOT EXISTS idx_transitions_episode
	ON transitions(episode_id, step);
`

// #endregion schema

// #region types

// Transition is one recorded step.
type Transition struct {
	Step        int                            `json:"step"`
	Observation plant.Observation              `json:"observation"`
	Actions     map[plant.AgentID]plant.Action `json:"actions"`
	Reward      reward.Reward                  `json:"reward"`
	Info        env.StepInfo                   `json:"info"`
}

// Episode is the export shape: header plus transitions in step order.
type Episode struct {
	ID         string                 `json:"id"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt *time.Time             `json:"finished_at,omitempty"`
	Metrics    *reward.EpisodeMetrics `json:"metrics,omitempty"`
	Steps      []Transition           `json:"steps"`
}

// Store records episodes in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion types

// #region constructor

// NewStore opens the episode database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region episode-lifecycle

// BeginEpisode registers a new episode and returns its ID.
func (s *Store) BeginEpisode() (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO episodes (episode_id, started_at) VALUES (?, ?)`,
		id, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("begin episode: %w", err)
	}
	return id, nil
}

// Record appends one transition to an episode.
func (s *Store) Record(episodeID string, t Transition) error {
	obsJSON, err := json.Marshal(t.Observation)
	if err != nil {
		return fmt.Errorf("marshal observation: %w", err)
	}
	actJSON, err := json.Marshal(t.Actions)
	if err != nil {
		return fmt.Errorf("marshal actions: %w", err)
	}
	bdJSON, err := json.Marshal(t.Reward.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	infoJSON, err := json.Marshal(t.Info)
	if err != nil {
		return fmt.Errorf("marshal info: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO transitions (episode_id, step, observation_json, actions_json, reward, breakdown_json, info_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		episodeID, t.Step, string(obsJSON), string(actJSON),
		t.Reward.Total, string(bdJSON), string(infoJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert transition: %w", err)
	}
	_, err = tx.Exec(
		`UPDATE episodes SET steps = steps + 1 WHERE episode_id = ?`, episodeID,
	)
	if err != nil {
		return fmt.Errorf("bump step count: %w", err)
	}
	return tx.Commit()
}

// FinishEpisode stamps the episode and stores its summary metrics.
func (s *Store) FinishEpisode(episodeID string, m reward.EpisodeMetrics) error {
	mJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	res, err := s.db.Exec(
		`UPDATE episodes SET finished_at = ?, metrics_json = ? WHERE episode_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), string(mJSON), episodeID,
	)
	if err != nil {
		return fmt.Errorf("finish episode: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("episode %s not found", episodeID)
	}
	return nil
}

// #endregion episode-lifecycle

// #region queries

// Rewards returns the reward series of an episode in step order.
func (s *Store) Rewards(episodeID string) ([]float64, error) {
	rows, err := s.db.Query(
		`SELECT reward FROM transitions WHERE episode_id = ? ORDER BY step`, episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query rewards: %w", err)
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var r float64
		if err := rows.Scan(&r); err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Metrics recomputes the episode summary from the stored rewards.
func (s *Store) Metrics(episodeID string) (reward.EpisodeMetrics, error) {
	totals, err := s.Rewards(episodeID)
	if err != nil {
		return reward.EpisodeMetrics{}, err
	}
	return reward.Summarize(totals), nil
}

// Episode loads a full episode with its transitions.
func (s *Store) Episode(episodeID string) (Episode, error) {
	var ep Episode
	var startedStr string
	var finishedStr, metricsJSON sql.NullString
	err := s.db.QueryRow(
		`SELECT episode_id, started_at, finished_at, metrics_json FROM episodes WHERE episode_id = ?`,
		episodeID,
	).Scan(&ep.ID, &startedStr, &finishedStr, &metricsJSON)
	if err != nil {
		return Episode{}, fmt.Errorf("get episode %s: %w", episodeID, err)
	}
	ep.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	if finishedStr.Valid {
		t, _ := time.Parse(time.RFC3339Nano, finishedStr.String)
		ep.FinishedAt = &t
	}
	if metricsJSON.Valid {
		var m reward.EpisodeMetrics
		if err := json.Unmarshal([]byte(metricsJSON.String), &m); err != nil {
			return Episode{}, fmt.Errorf("unmarshal metrics: %w", err)
		}
		ep.Metrics = &m
	}

	rows, err := s.db.Query(
		`SELECT step, observation_json, actions_json, reward, breakdown_json, info_json
		 FROM transitions WHERE episode_id = ? ORDER BY step`, episodeID,
	)
	if err != nil {
		return Episode{}, fmt.Errorf("query transitions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t Transition
		var obsJSON, actJSON, bdJSON, infoJSON string
		if err := rows.Scan(&t.Step, &obsJSON, &actJSON, &t.Reward.Total, &bdJSON, &infoJSON); err != nil {
			return Episode{}, fmt.Errorf("scan transition: %w", err)
		}
		if err := json.Unmarshal([]byte(obsJSON), &t.Observation); err != nil {
			return Episode{}, fmt.Errorf("unmarshal observation: %w", err)
		}
		if err := json.Unmarshal([]byte(actJSON), &t.Actions); err != nil {
			return Episode{}, fmt.Errorf("unmarshal actions: %w", err)
		}
		if err := json.Unmarshal([]byte(bdJSON), &t.Reward.Breakdown); err != nil {
			return Episode{}, fmt.Errorf("unmarshal breakdown: %w", err)
		}
		if err := json.Unmarshal([]byte(infoJSON), &t.Info); err != nil {
			return Episode{}, fmt.Errorf("unmarshal info: %w", err)
		}
		ep.Steps = append(ep.Steps, t)
	}
	return ep, rows.Err()
}

// ListEpisodes returns the most recent episode IDs.
func (s *Store) ListEpisodes(limit int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT episode_id FROM episodes ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan episode id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// #endregion queries

// #region export

// ExportJSON writes one episode as indented JSON.
func (s *Store) ExportJSON(episodeID string, w io.Writer) error {
	ep, err := s.Episode(episodeID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ep); err != nil {
		return fmt.Errorf("encode episode: %w", err)
	}
	return nil
}

// #endregion export
