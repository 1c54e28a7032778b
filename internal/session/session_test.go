package session

import (
	"context"
	"testing"

	"github.com/lucidbard/codequest/internal/story"
	"github.com/lucidbard/codequest/internal/verdict"
)

func testStory() *story.Story {
	return &story.Story{
		Title: "test",
		Stages: []story.Stage{
			{
				ID:       "stage-1",
				Ordinal:  1,
				Title:    "Greeting",
				Language: "starlark",
				Mode:     story.ModeSingle,
				Cells:    []story.Cell{{Index: 0}},
				Criteria: verdict.Criteria{RequiredTexts: []string{"hello"}},
			},
			{
				ID:       "stage-2",
				Ordinal:  2,
				Title:    "Counting",
				Language: "starlark",
				Mode:     story.ModeMultiCell,
				Cells:    []story.Cell{{Index: 0}, {Index: 1}},
				Criteria: verdict.Criteria{RequiredNumbers: []float64{6}},
			},
		},
	}
}

func testState() *State {
	return NewState(testStory(), verdict.New(verdict.DefaultConfig()), nil)
}

func TestHandleExecution_PassAdvancesStage(t *testing.T) {
	state := testState()

	out, err := HandleExecution(context.Background(), state, `print("Hello, world")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.OK() {
		t.Fatalf("execution failed: %s", out.Result.Err)
	}
	if out.Verdict == nil || !out.Verdict.Passed {
		t.Fatalf("expected passing verdict, got %+v", out.Verdict)
	}
	if !out.StagePassed {
		t.Error("expected StagePassed")
	}
	if state.StageIndex != 1 {
		t.Errorf("StageIndex = %d, want 1", state.StageIndex)
	}
	if !state.CompletedStages["stage-1"] {
		t.Error("expected stage-1 marked completed")
	}
}

func TestHandleExecution_FailingOutputDoesNotAdvance(t *testing.T) {
	state := testState()

	out, err := HandleExecution(context.Background(), state, `print("goodbye")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Verdict == nil || out.Verdict.Passed {
		t.Fatalf("expected failing verdict, got %+v", out.Verdict)
	}
	if out.Verdict.Diagnostic.Category != verdict.CategoryRequiredTexts {
		t.Errorf("diagnostic category = %q, want requiredTexts", out.Verdict.Diagnostic.Category)
	}
	if state.StageIndex != 0 {
		t.Errorf("StageIndex = %d, want 0", state.StageIndex)
	}
}

func TestHandleExecution_RuntimeErrorSkipsValidation(t *testing.T) {
	state := testState()

	out, err := HandleExecution(context.Background(), state, `print(undefined_name)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.OK() {
		t.Fatal("expected runtime error")
	}
	if out.Verdict != nil {
		t.Fatalf("expected nil verdict on failed run, got %+v", out.Verdict)
	}
	if state.Failures != 1 {
		t.Errorf("Failures = %d, want 1", state.Failures)
	}
}

func TestHandleExecution_MultiCellAccumulates(t *testing.T) {
	state := testState()
	state.StageIndex = 1 // counting stage

	// Cell 0 defines data; output alone does not satisfy the criteria.
	out, err := HandleExecution(context.Background(), state, "total = 1 + 2 + 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.OK() {
		t.Fatalf("cell 0 failed: %s", out.Result.Err)
	}
	if out.StagePassed {
		t.Fatal("stage should not pass on cell 0")
	}

	// Cell 1 runs with cell 0's source accumulated above it.
	if !NextCell(state) {
		t.Fatal("expected NextCell to advance")
	}
	out, err = HandleExecution(context.Background(), state, "print(total)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.OK() {
		t.Fatalf("cell 1 failed: %s", out.Result.Err)
	}
	if !out.StagePassed {
		t.Fatalf("expected stage to pass, verdict: %+v", out.Verdict)
	}
	if !out.StoryDone {
		t.Error("expected story done after last stage")
	}
	if state.Phase != PhaseSummary {
		t.Errorf("phase = %d, want PhaseSummary", state.Phase)
	}
}

func TestHandleExecution_BrokenRetryPreservesGoodCell(t *testing.T) {
	state := testState()
	state.StageIndex = 1

	if _, err := HandleExecution(context.Background(), state, "total = 1 + 2 + 3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-run cell 0 with broken source: the cached success must survive.
	out, err := HandleExecution(context.Background(), state, "total = )")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.OK() {
		t.Fatal("expected syntax error")
	}

	NextCell(state)
	out, err = HandleExecution(context.Background(), state, "print(total)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.StagePassed {
		t.Fatalf("expected stage pass using preserved cell 0, verdict: %+v", out.Verdict)
	}
}

func TestResetStage(t *testing.T) {
	state := testState()
	state.StageIndex = 1

	if _, err := HandleExecution(context.Background(), state, "total = 6"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	NextCell(state)
	ResetStage(state)

	if state.CellIndex != 0 {
		t.Errorf("CellIndex = %d, want 0", state.CellIndex)
	}
	if cells := state.Accum.SuccessfulCells("stage-2"); len(cells) != 0 {
		t.Errorf("expected no accumulated cells after reset, got %v", cells)
	}

	// Cell 1 now runs without cell 0's definition and fails.
	state.CellIndex = 1
	out, err := HandleExecution(context.Background(), state, "print(total)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.OK() {
		t.Fatal("expected failure after reset removed cell 0")
	}
}

func TestCellNavigation(t *testing.T) {
	state := testState()
	state.StageIndex = 1

	if PrevCell(state) {
		t.Error("PrevCell should fail on first cell")
	}
	if !NextCell(state) {
		t.Error("NextCell should advance to cell 1")
	}
	if NextCell(state) {
		t.Error("NextCell should fail on last cell")
	}
	if !PrevCell(state) {
		t.Error("PrevCell should return to cell 0")
	}
}

func TestBuildProgressAndSummary(t *testing.T) {
	state := testState()

	if _, err := HandleExecution(context.Background(), state, `print("hello")`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := BuildProgress(state)
	if p.StagesDone != 1 || p.StagesTotal != 2 {
		t.Errorf("progress = %+v, want 1/2", p)
	}
	if p.Percent != 0.5 {
		t.Errorf("percent = %v, want 0.5", p.Percent)
	}

	sum := BuildSummary(state)
	if sum.Executions != 1 {
		t.Errorf("executions = %d, want 1", sum.Executions)
	}
	if sum.StagesCompleted != 1 {
		t.Errorf("stages completed = %d, want 1", sum.StagesCompleted)
	}
	if sum.StoryDone {
		t.Error("story should not be done")
	}
}
