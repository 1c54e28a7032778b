package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}

	// journal_mode reports "memory" for in-memory databases, so only
	// the remaining pragmas are checked here.
	for pragma, want := range map[string]string{
		"foreign_keys": "1",
		"synchronous":  "1", // NORMAL
	} {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + pragma).Scan(&got); err != nil {
			t.Fatalf("PRAGMA %s: %v", pragma, err)
		}
		if got != want {
			t.Errorf("PRAGMA %s = %q, want %q", pragma, got, want)
		}
	}
}

func TestSequenceCounterStartsAtOneAndIncrements(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Errorf("sequence = %d, want %d", got, want)
		}
	}
}

func TestAppendAndQueryExecutions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runs := []ExecutionEventData{
		{SessionID: "s1", StageID: "signal-1", CellIndex: 0, Source: `print("hi")`, Output: "hi\n", Success: true},
		{SessionID: "s1", StageID: "signal-1", CellIndex: 1, Source: `1/0`, ErrorMessage: "division by zero", Success: false},
		{SessionID: "s1", StageID: "signal-2", CellIndex: 0, Source: `print(42)`, Output: "42\n", Success: true},
	}
	for i, data := range runs {
		if err := repo.AppendExecution(ctx, data); err != nil {
			t.Fatalf("append execution %d: %v", i, err)
		}
	}

	stats, err := repo.StageStats(ctx, "signal-1")
	if err != nil {
		t.Fatalf("stage stats: %v", err)
	}
	if stats.Executions != 2 {
		t.Errorf("executions = %d, want 2", stats.Executions)
	}
	if stats.Failures != 1 {
		t.Errorf("failures = %d, want 1", stats.Failures)
	}
}

func TestCompletedStagesInFirstPassOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	vals := []ValidationEventData{
		{SessionID: "s1", StageID: "signal-1", Passed: false, Category: "requiredTexts"},
		{SessionID: "s1", StageID: "signal-1", Passed: true, Strategy: "substring"},
		{SessionID: "s1", StageID: "signal-2", Passed: true, Strategy: "number"},
		{SessionID: "s1", StageID: "signal-1", Passed: true, Strategy: "substring"},
	}
	for i, data := range vals {
		if err := repo.AppendValidation(ctx, data); err != nil {
			t.Fatalf("append validation %d: %v", i, err)
		}
	}

	stages, err := repo.CompletedStages(ctx)
	if err != nil {
		t.Fatalf("completed stages: %v", err)
	}
	if len(stages) != 2 {
		t.Fatalf("completed stages = %v, want 2 entries", stages)
	}
	if stages[0] != "signal-1" || stages[1] != "signal-2" {
		t.Errorf("stage order = %v, want [signal-1 signal-2]", stages)
	}
}

func TestAppendAndQueryLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5-20251001",
			Purpose:      "hint",
			InputTokens:  100 + i,
			OutputTokens: 50,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	records, err := repo.LLMRequests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query llm requests: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", records[0].Sequence, records[1].Sequence)
	}
	if records[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", records[0].InputTokens)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:         1,
			SessionID:       "s1",
			StageID:         "signal-3",
			CompletedStages: []string{"signal-1", "signal-2"},
			CellSources: map[string]map[int]string{
				"signal-3": {0: `print("hello")`},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.StageID != "signal-3" {
		t.Errorf("stage = %q, want signal-3", snap.Data.StageID)
	}
	if snap.Data.CellSources["signal-3"][0] != `print("hello")` {
		t.Errorf("cell source round-trip failed: %v", snap.Data.CellSources)
	}
}

func saveSnapshots(t *testing.T, repo SnapshotRepo, n int) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < n; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}
}

func TestSnapshotPrune(t *testing.T) {
	tests := []struct {
		name       string
		saved      int
		keep       int
		wantLeft   int
		wantLatest int64
	}{
		{name: "drops rows past the keep window", saved: 7, keep: 5, wantLeft: 5, wantLatest: 7},
		{name: "no-op when fewer than keep exist", saved: 2, keep: 5, wantLeft: 2, wantLatest: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			repo := s.SnapshotRepo()
			ctx := context.Background()

			saveSnapshots(t, repo, tt.saved)
			if err := repo.Prune(ctx, tt.keep); err != nil {
				t.Fatalf("prune: %v", err)
			}

			count, err := s.Client().Snapshot.Query().Count(ctx)
			if err != nil {
				t.Fatalf("count: %v", err)
			}
			if count != tt.wantLeft {
				t.Errorf("remaining snapshots = %d, want %d", count, tt.wantLeft)
			}

			snap, err := repo.Latest(ctx)
			if err != nil {
				t.Fatalf("latest: %v", err)
			}
			if snap.Sequence != tt.wantLatest {
				t.Errorf("latest sequence = %d, want %d", snap.Sequence, tt.wantLatest)
			}
		})
	}
}
