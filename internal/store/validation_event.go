package store

import (
	"context"
	"fmt"

	"github.com/lucidbard/codequest/ent"
	"github.com/lucidbard/codequest/ent/executionevent"
	"github.com/lucidbard/codequest/ent/validationevent"
)

func (r *eventRepo) AppendValidation(ctx context.Context, data ValidationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ValidationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStageID(data.StageID).
		SetCellIndex(data.CellIndex).
		SetPassed(data.Passed).
		SetStrategy(data.Strategy).
		SetCategory(data.Category).
		SetDetail(data.Detail).
		SetConfigProblem(data.ConfigProblem).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save validation event: %w", err)
	}
	return nil
}

func (r *eventRepo) StageStats(ctx context.Context, stageID string) (StageStats, error) {
	stats := StageStats{StageID: stageID}

	execs, err := r.client.ExecutionEvent.Query().
		Where(executionevent.StageID(stageID)).
		All(ctx)
	if err != nil {
		return stats, fmt.Errorf("query executions: %w", err)
	}
	stats.Executions = len(execs)
	for _, e := range execs {
		if !e.Success {
			stats.Failures++
		}
	}

	vals, err := r.client.ValidationEvent.Query().
		Where(validationevent.StageID(stageID)).
		All(ctx)
	if err != nil {
		return stats, fmt.Errorf("query validations: %w", err)
	}
	stats.Validations = len(vals)
	for _, v := range vals {
		if v.Passed {
			stats.Passes++
		}
	}

	return stats, nil
}

func (r *eventRepo) CompletedStages(ctx context.Context) ([]string, error) {
	vals, err := r.client.ValidationEvent.Query().
		Where(validationevent.Passed(true)).
		Order(ent.Asc(validationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed stages: %w", err)
	}

	seen := make(map[string]bool)
	var stages []string
	for _, v := range vals {
		if !seen[v.StageID] {
			seen[v.StageID] = true
			stages = append(stages, v.StageID)
		}
	}
	return stages, nil
}
