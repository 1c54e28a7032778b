package store

import (
	"context"
	"fmt"

	"github.com/lucidbard/codequest/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendExecution(ctx context.Context, data ExecutionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExecutionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStageID(data.StageID).
		SetCellIndex(data.CellIndex).
		SetSource(data.Source).
		SetOutput(data.Output).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save execution event: %w", err)
	}
	return nil
}
