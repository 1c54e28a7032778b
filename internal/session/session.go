package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lucidbard/codequest/internal/interp"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/verdict"
)

// Outcome describes everything that happened for one cell run:
// the composite source that actually executed, the interpreter
// result, and the verdict (nil when the run failed).
type Outcome struct {
	Composite   string
	Result      interp.Result
	Verdict     *verdict.Verdict
	StagePassed bool
	StoryDone   bool
}

// HandleExecution runs the current cell's attempt through the full
// pipeline: assemble the composite source from previously successful
// cells, execute it, record the result, and on success check the
// stage's criteria. A passing verdict completes the stage and
// advances to the next one.
func HandleExecution(ctx context.Context, state *State, source string) (*Outcome, error) {
	stage := state.CurrentStage()
	if stage == nil {
		return nil, fmt.Errorf("no active stage")
	}

	in, err := state.interpreterFor(stage.Language)
	if err != nil {
		return nil, fmt.Errorf("interpreter for stage %s: %w", stage.ID, err)
	}

	composite := state.Accum.AccumulatedCode(stage.ID, state.CellIndex, source)

	start := time.Now()
	result := in.Execute(ctx, composite)
	durationMs := time.Since(start).Milliseconds()

	state.Accum.RecordResult(stage.ID, state.CellIndex, source, result)
	state.Executions++
	if !result.OK() {
		state.Failures++
	}
	state.LastResult = result

	appendEvent(ctx, state, func() error {
		return state.EventRepo.AppendExecution(ctx, store.ExecutionEventData{
			SessionID:    state.SessionID,
			StageID:      stage.ID,
			CellIndex:    state.CellIndex,
			Source:       source,
			Output:       result.Output,
			Success:      result.OK(),
			ErrorMessage: result.Err,
			DurationMs:   durationMs,
		})
	})

	outcome := &Outcome{Composite: composite, Result: result}

	if !result.OK() {
		state.LastVerdict = nil
		return outcome, nil
	}

	v := state.Validator.Validate(result.Output, composite, stage.Criteria)
	state.LastVerdict = &v
	outcome.Verdict = &v

	appendEvent(ctx, state, func() error {
		return state.EventRepo.AppendValidation(ctx, store.ValidationEventData{
			SessionID:     state.SessionID,
			StageID:       stage.ID,
			CellIndex:     state.CellIndex,
			Passed:        v.Passed,
			Strategy:      v.Strategy,
			Category:      string(v.Diagnostic.Category),
			Detail:        v.Diagnostic.Detail,
			ConfigProblem: v.Diagnostic.ConfigProblem,
		})
	})

	if v.Passed {
		outcome.StagePassed = true
		completeStage(ctx, state, stage.ID)
		outcome.StoryDone = state.Done()
	}

	return outcome, nil
}

// completeStage marks the stage done and advances to the next one.
func completeStage(ctx context.Context, state *State, stageID string) {
	state.CompletedStages[stageID] = true
	state.StageIndex++
	state.CellIndex = 0
	state.Phase = PhaseNarrative
	if state.Done() {
		state.Phase = PhaseSummary
	}

	appendEvent(ctx, state, func() error {
		return state.EventRepo.AppendSession(ctx, store.SessionEventData{
			SessionID:       state.SessionID,
			Action:          "stage_completed",
			StageID:         stageID,
			Executions:      state.Executions,
			StagesCompleted: len(state.CompletedStages),
		})
	})
}

// NextCell moves editing focus to the next cell in the stage.
// Returns false when already on the last cell.
func NextCell(state *State) bool {
	stage := state.CurrentStage()
	if stage == nil || state.CellIndex+1 >= len(stage.Cells) {
		return false
	}
	state.CellIndex++
	return true
}

// PrevCell moves editing focus to the previous cell in the stage.
// Returns false when already on the first cell.
func PrevCell(state *State) bool {
	if state.CellIndex == 0 {
		return false
	}
	state.CellIndex--
	return true
}

// ResetStage clears all accumulated cell state for the current stage
// so the player can start it over.
func ResetStage(state *State) {
	stage := state.CurrentStage()
	if stage == nil {
		return
	}
	state.Accum.ResetStage(stage.ID)
	state.CellIndex = 0
	state.LastVerdict = nil
	state.LastResult = interp.Result{}
}

// Begin records the session start event.
func Begin(ctx context.Context, state *State) {
	appendEvent(ctx, state, func() error {
		return state.EventRepo.AppendSession(ctx, store.SessionEventData{
			SessionID: state.SessionID,
			Action:    "started",
			StageID:   stageIDOrEmpty(state),
		})
	})
}

// End records the session end event and freezes elapsed time.
func End(ctx context.Context, state *State) {
	state.Elapsed = time.Since(state.StartTime)
	appendEvent(ctx, state, func() error {
		return state.EventRepo.AppendSession(ctx, store.SessionEventData{
			SessionID:       state.SessionID,
			Action:          "ended",
			StageID:         stageIDOrEmpty(state),
			Executions:      state.Executions,
			StagesCompleted: len(state.CompletedStages),
			DurationSecs:    int64(state.Elapsed.Seconds()),
		})
	})
}

func stageIDOrEmpty(state *State) string {
	if stage := state.CurrentStage(); stage != nil {
		return stage.ID
	}
	return ""
}

// appendEvent runs fn when persistence is enabled, warning instead of
// failing the session when the append errors.
func appendEvent(_ context.Context, state *State, fn func() error) {
	if state.EventRepo == nil {
		return
	}
	if err := fn(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record event: %v\n", err)
	}
}
