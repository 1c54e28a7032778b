package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucidbard/codequest/internal/accumulate"
	"github.com/lucidbard/codequest/internal/interp"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/story"
	"github.com/lucidbard/codequest/internal/verdict"
)

// Phase represents the current phase of the play session.
type Phase int

const (
	PhaseLoading   Phase = iota // Restoring state from snapshot
	PhaseNarrative              // Showing stage narrative
	PhaseEditing                // Player editing a cell
	PhaseFeedback               // Showing execution/validation feedback
	PhaseSummary                // Showing the end-of-session summary
)

// State tracks the runtime state of an active play session.
//
// State is owned by the UI event loop and is never accessed
// concurrently; async services deliver results through their own
// mailboxes, not by mutating State.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Story is the loaded narrative content.
	Story *story.Story

	// StageIndex is the zero-based index of the current stage.
	StageIndex int

	// CellIndex is the zero-based index of the cell being edited.
	CellIndex int

	// Accum caches the last-known-successful source per cell.
	Accum *accumulate.Store

	// Validator checks output and source against stage criteria.
	Validator *verdict.Validator

	// Phase is the current session phase.
	Phase Phase

	// CompletedStages is the set of stage IDs with a passing verdict.
	CompletedStages map[string]bool

	// Executions counts cell runs in this session.
	Executions int

	// Failures counts cell runs that ended in an interpreter error.
	Failures int

	// HintsUsed counts hints shown in this session.
	HintsUsed int

	// LastResult is the most recent interpreter result.
	LastResult interp.Result

	// LastVerdict is the verdict of the most recent validated run,
	// nil when the last run failed or nothing ran yet.
	LastVerdict *verdict.Verdict

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time, set when the session ends.
	Elapsed time.Duration

	// EventRepo records domain events (nil disables persistence).
	EventRepo store.EventRepo

	// interpreters caches one interpreter per language.
	interpreters map[string]interp.Interpreter
}

// NewState creates a session state positioned at the first stage.
func NewState(s *story.Story, validator *verdict.Validator, eventRepo store.EventRepo) *State {
	return &State{
		SessionID:       uuid.NewString(),
		Story:           s,
		Accum:           accumulate.NewStore(accumulate.DefaultConfig()),
		Validator:       validator,
		Phase:           PhaseNarrative,
		CompletedStages: make(map[string]bool),
		StartTime:       time.Now(),
		EventRepo:       eventRepo,
		interpreters:    make(map[string]interp.Interpreter),
	}
}

// CurrentStage returns the stage being played, or nil past the end.
func (s *State) CurrentStage() *story.Stage {
	if s.StageIndex < 0 || s.StageIndex >= len(s.Story.Stages) {
		return nil
	}
	return &s.Story.Stages[s.StageIndex]
}

// CurrentCell returns the cell being edited, or nil past the end.
func (s *State) CurrentCell() *story.Cell {
	stage := s.CurrentStage()
	if stage == nil || s.CellIndex < 0 || s.CellIndex >= len(stage.Cells) {
		return nil
	}
	return &stage.Cells[s.CellIndex]
}

// Done reports whether every stage has been completed.
func (s *State) Done() bool {
	return s.StageIndex >= len(s.Story.Stages)
}

// interpreterFor returns the cached interpreter for the language,
// creating it on first use.
func (s *State) interpreterFor(language string) (interp.Interpreter, error) {
	if in, ok := s.interpreters[language]; ok {
		return in, nil
	}
	in, err := interp.New(language)
	if err != nil {
		return nil, err
	}
	s.interpreters[language] = in
	return in, nil
}
