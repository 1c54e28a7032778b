package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out the global event sequence. Every event
// type lives in its own table, so table auto-increment IDs cannot
// order a hint against an execution; this single counter can. The
// snapshot repo also leans on it: replay after a snapshot is "every
// event with sequence > snapshot.sequence" across all tables.
//
// The counter lives in a one-row table managed with raw SQL because
// ent has no atomic-counter primitive. RETURNING makes the increment
// atomic in the database; the mutex keeps concurrent goroutines in
// this process from interleaving.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			value INTEGER NOT NULL DEFAULT 0
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, value) VALUES (1, 0)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence counter: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number, starting at 1.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	row := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET value = value + 1 WHERE id = 1 RETURNING value`)
	if err := row.Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
