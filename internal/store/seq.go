package store

// Per-run transcript sequence counter.
//
// Message rows live in an ent-managed table whose auto-increment IDs are
// global, so they can't serve as a dense per-run ordering. This counter
// assigns each run its own gapless increasing sequence, which gives the
// transcript:
//
//   - Strict per-run ordering (replay shows messages exactly as emitted)
//   - A serialization point for concurrent submissions to the same run
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

type transcriptSequence struct {
	mu sync.Mutex
	db *sql.DB
}

// newTranscriptSequence creates the counter and ensures the tracking table exists.
func newTranscriptSequence(db *sql.DB) (*transcriptSequence, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS transcript_sequence (
		run_id TEXT PRIMARY KEY,
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	return &transcriptSequence{db: db}, nil
}

// Next atomically returns the next sequence number for runID and increments
// the counter. The first call for a run returns 1.
func (ts *transcriptSequence) Next(ctx context.Context, runID string) (int64, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	_, err := ts.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO transcript_sequence (run_id, next_val) VALUES (?, 1)`, runID)
	if err != nil {
		return 0, fmt.Errorf("seed sequence for run %s: %w", runID, err)
	}

	var seq int64
	err = ts.db.QueryRowContext(ctx,
		`UPDATE transcript_sequence SET next_val = next_val + 1 WHERE run_id = ? RETURNING next_val - 1`,
		runID,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence for run %s: %w", runID, err)
	}
	return seq, nil
}
