package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/chubbycorn/internal/core"
)

// RunRecord is a finished run with its statistics.
type RunRecord struct {
	ID              string
	GameID          string
	Score           int
	LivesLeft       int
	EndReason       string
	Duration        time.Duration
	PeakHazardSpeed float64
	GoodCollected   int
	BadCollected    int
	Player          string // SSH user for remote runs, empty locally
	CreatedAt       time.Time
}

// NewRunRecord builds a record from a run summary with a fresh ID.
func NewRunRecord(gameID, player string, sum core.RunSummary) RunRecord {
	return RunRecord{
		ID:              uuid.NewString(),
		GameID:          gameID,
		Score:           sum.Score,
		LivesLeft:       sum.LivesLeft,
		EndReason:       sum.EndReason,
		Duration:        sum.Duration,
		PeakHazardSpeed: sum.PeakHazardSpeed,
		GoodCollected:   sum.GoodCollected,
		BadCollected:    sum.BadCollected,
		Player:          player,
	}
}

const runColumns = `id, game_id, score, lives_left, end_reason, duration_ms,
	peak_hazard_speed, good_collected, bad_collected, player, created_at`

// SaveRun stores a run record together with its score entry.
// A record without an ID gets a new one. Returns the run ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("storage: invalid run id %q: %w", r.ID, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(
		`INSERT INTO runs (id, game_id, score, lives_left, end_reason, duration_ms,
		                   peak_hazard_speed, good_collected, bad_collected, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Score, r.LivesLeft, r.EndReason, r.Duration.Milliseconds(),
		r.PeakHazardSpeed, r.GoodCollected, r.BadCollected, r.Player,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", r.GameID, r.Score); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return r.ID, nil
}

// RunByID retrieves a run. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	row := s.db.QueryRow("SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	r, err := scanRun(row)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// TopRuns retrieves the best runs of a game, highest score first.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		"SELECT "+runColumns+" FROM runs WHERE game_id = ? ORDER BY score DESC, created_at ASC LIMIT ?",
		gameID, limit,
	)
}

// RecentRuns retrieves the latest runs across all games.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		"SELECT "+runColumns+" FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(sc rowScanner) (RunRecord, error) {
	var r RunRecord
	var durationMS int64
	var createdAt any

	err := sc.Scan(
		&r.ID,
		&r.GameID,
		&r.Score,
		&r.LivesLeft,
		&r.EndReason,
		&durationMS,
		&r.PeakHazardSpeed,
		&r.GoodCollected,
		&r.BadCollected,
		&r.Player,
		&createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}

	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunTotals aggregates collected items over every run of a game.
type RunTotals struct {
	Runs            int
	GoodCollected   int
	BadCollected    int
	LongestRun      time.Duration
	PeakHazardSpeed float64
}

// GetRunTotals sums the run records of a game.
func (s *Store) GetRunTotals(gameID string) (RunTotals, error) {
	var t RunTotals
	var longest sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(good_collected), 0), COALESCE(SUM(bad_collected), 0),
		        MAX(duration_ms), COALESCE(MAX(peak_hazard_speed), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&t.Runs, &t.GoodCollected, &t.BadCollected, &longest, &t.PeakHazardSpeed)
	if err != nil {
		return RunTotals{}, fmt.Errorf("storage: cannot get run totals: %w", err)
	}

	if longest.Valid {
		t.LongestRun = time.Duration(longest.Int64) * time.Millisecond
	}
	return t, nil
}
