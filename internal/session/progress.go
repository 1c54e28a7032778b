package session

import (
	"context"
	"fmt"
	"time"

	"github.com/lucidbard/codequest/internal/store"
)

// snapshotVersion is bumped when SnapshotData's layout changes.
const snapshotVersion = 1

// keepSnapshots is how many snapshots survive pruning.
const keepSnapshots = 10

// Progress summarizes how far the player is through the story.
type Progress struct {
	StagesDone  int
	StagesTotal int
	Percent     float64
}

// BuildProgress computes story progress from the session state.
func BuildProgress(state *State) Progress {
	p := Progress{
		StagesDone:  len(state.CompletedStages),
		StagesTotal: len(state.Story.Stages),
	}
	if p.StagesTotal > 0 {
		p.Percent = float64(p.StagesDone) / float64(p.StagesTotal)
	}
	return p
}

// SaveSnapshot persists the playthrough position and all successful
// cell sources, then prunes old snapshots.
func SaveSnapshot(ctx context.Context, state *State, repo store.SnapshotRepo) error {
	if repo == nil {
		return nil
	}

	cellSources := make(map[string]map[int]string)
	for _, stage := range state.Story.Stages {
		for _, idx := range state.Accum.SuccessfulCells(stage.ID) {
			src, ok := state.Accum.CellSource(stage.ID, idx)
			if !ok {
				continue
			}
			if cellSources[stage.ID] == nil {
				cellSources[stage.ID] = make(map[int]string)
			}
			cellSources[stage.ID][idx] = src
		}
	}

	var completed []string
	for _, stage := range state.Story.Stages {
		if state.CompletedStages[stage.ID] {
			completed = append(completed, stage.ID)
		}
	}

	snap := &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:         snapshotVersion,
			SessionID:       state.SessionID,
			StageID:         stageIDOrEmpty(state),
			CompletedStages: completed,
			CellSources:     cellSources,
		},
	}

	if err := repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := repo.Prune(ctx, keepSnapshots); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// RestoreSnapshot positions the session at the latest saved snapshot.
// A missing snapshot leaves the state at the first stage.
func RestoreSnapshot(ctx context.Context, state *State, repo store.SnapshotRepo) error {
	if repo == nil {
		return nil
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}

	for _, id := range snap.Data.CompletedStages {
		state.CompletedStages[id] = true
	}

	for stageID, cells := range snap.Data.CellSources {
		for idx, src := range cells {
			state.Accum.RestoreCell(stageID, idx, src)
		}
	}

	if snap.Data.StageID != "" {
		if idx, ok := state.Story.StageIndexByID(snap.Data.StageID); ok {
			state.StageIndex = idx
		}
	} else if len(snap.Data.CompletedStages) == len(state.Story.Stages) {
		state.StageIndex = len(state.Story.Stages)
		state.Phase = PhaseSummary
	}

	return nil
}
