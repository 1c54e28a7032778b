package session

import "time"

// Summary holds the data displayed on the end-of-session screen.
type Summary struct {
	Duration        time.Duration
	Executions      int
	Failures        int
	StagesCompleted int
	StagesTotal     int
	HintsUsed       int
	StoryDone       bool
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) *Summary {
	elapsed := state.Elapsed
	if elapsed == 0 {
		elapsed = time.Since(state.StartTime)
	}
	return &Summary{
		Duration:        elapsed,
		Executions:      state.Executions,
		Failures:        state.Failures,
		StagesCompleted: len(state.CompletedStages),
		StagesTotal:     len(state.Story.Stages),
		HintsUsed:       state.HintsUsed,
		StoryDone:       state.Done(),
	}
}
