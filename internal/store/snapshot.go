package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lucidbard/codequest/ent"
	"github.com/lucidbard/codequest/ent/snapshot"
)

// snapshotRepo persists playthrough snapshots through the ent client.
// Snapshots are keyed by the event sequence they were taken at, so the
// most recent one is always the highest sequence.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	// ent stores the JSON column as a generic map.
	raw, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the snapshot with the highest sequence, or nil when
// none has been taken yet.
func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}

	raw, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", row.ID, err)
	}
	var data SnapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", row.ID, err)
	}

	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

// Prune drops all but the keep most recent snapshots.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	older, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Select(snapshot.FieldSequence).
		All(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	if len(older) == 0 {
		return nil
	}

	// older is sorted descending; its first entry is the newest of the
	// rows past the keep window.
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(older[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
