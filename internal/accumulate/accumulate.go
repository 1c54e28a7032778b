// Package accumulate tracks, per stage, which cells of a multi-cell
// exercise have executed successfully and assembles the composite source
// to submit for the next run.
//
// The store is a "best known good" cache, not a replay log: a failing
// retry of a cell never rolls back that cell's previously recorded
// successful source, so downstream cells keep working while the learner
// fixes a single broken cell.
//
// Callers serialize access: the store assumes at most one in-flight
// execution per stage at a time and does no locking of its own.
package accumulate

import (
	"sort"
	"strings"

	"github.com/lucidbard/codequest/internal/interp"
)

// Config holds accumulation policy knobs.
type Config struct {
	// OverwriteOnSuccess controls what a repeat success does to a cell's
	// cached source. True (the default) means last success wins; false
	// keeps the first successful source for the lifetime of the stage.
	OverwriteOnSuccess bool
}

// DefaultConfig returns the default accumulation policy.
func DefaultConfig() Config {
	return Config{OverwriteOnSuccess: true}
}

// Store holds the accumulated state of every active stage, keyed by
// stage ID.
type Store struct {
	cfg    Config
	stages map[string]map[int]string
}

// NewStore creates an empty accumulation store.
func NewStore(cfg Config) *Store {
	return &Store{
		cfg:    cfg,
		stages: make(map[string]map[int]string),
	}
}

// AccumulatedCode assembles the source to execute for an attempt at
// cell upTo: the last successful source of every lower-indexed cell, in
// ascending index order, followed by the attempted source itself.
//
// Cells with no successful run yet are skipped silently. Attempting cell
// 3 before cell 2 ever succeeded therefore yields a composite missing
// cell 2's contribution; the interpreter error that follows is expected
// and surfaced normally.
func (s *Store) AccumulatedCode(stageID string, upTo int, attempt string) string {
	cells := s.stages[stageID]
	if len(cells) == 0 {
		return attempt
	}

	indexes := make([]int, 0, len(cells))
	for i := range cells {
		if i < upTo {
			indexes = append(indexes, i)
		}
	}
	sort.Ints(indexes)

	var b strings.Builder
	for _, i := range indexes {
		b.WriteString(cells[i])
		if !strings.HasSuffix(cells[i], "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString(attempt)
	return b.String()
}

// RecordResult records the outcome of executing a cell.
//
// A successful outcome upserts the cell's cached source. A failed outcome
// mutates nothing: earlier successes for the same index stay intact and
// no new entry appears. Recording the same successful source twice leaves
// the state unchanged.
func (s *Store) RecordResult(stageID string, cellIndex int, source string, res interp.Result) {
	if !res.OK() {
		return
	}

	cells := s.stages[stageID]
	if cells == nil {
		cells = make(map[int]string)
		s.stages[stageID] = cells
	}

	if _, exists := cells[cellIndex]; exists && !s.cfg.OverwriteOnSuccess {
		return
	}
	cells[cellIndex] = source
}

// RestoreCell seeds a cell's cached source directly, bypassing
// execution. Used when rebuilding a stage from a saved snapshot.
func (s *Store) RestoreCell(stageID string, cellIndex int, source string) {
	cells := s.stages[stageID]
	if cells == nil {
		cells = make(map[int]string)
		s.stages[stageID] = cells
	}
	cells[cellIndex] = source
}

// SuccessfulCells returns the ascending indexes of cells that have
// succeeded at least once since the stage was entered or reset.
func (s *Store) SuccessfulCells(stageID string) []int {
	cells := s.stages[stageID]
	indexes := make([]int, 0, len(cells))
	for i := range cells {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	return indexes
}

// CellSource returns the cached successful source for a cell, if any.
func (s *Store) CellSource(stageID string, cellIndex int) (string, bool) {
	src, ok := s.stages[stageID][cellIndex]
	return src, ok
}

// ResetStage discards all accumulated state for a stage. Used when the
// learner restarts or leaves the stage.
func (s *Store) ResetStage(stageID string) {
	delete(s.stages, stageID)
}
