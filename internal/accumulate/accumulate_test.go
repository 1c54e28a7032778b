package accumulate

import (
	"testing"

	"github.com/lucidbard/codequest/internal/interp"
)

func success() interp.Result { return interp.Result{Output: "ok\n"} }
func failure() interp.Result { return interp.Result{Err: "boom"} }

func TestAccumulatedCode_AscendingOrder(t *testing.T) {
	s := NewStore(DefaultConfig())

	// Recorded out of order on purpose.
	s.RecordResult("st1", 2, "c = a + b", success())
	s.RecordResult("st1", 0, "a = 1", success())
	s.RecordResult("st1", 1, "b = 2", success())

	got := s.AccumulatedCode("st1", 3, "print(c)")
	want := "a = 1\nb = 2\nc = a + b\nprint(c)"
	if got != want {
		t.Fatalf("composite mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAccumulatedCode_SkipsMissingCells(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 0, "a = 1", success())
	// Cell 1 never succeeded.

	got := s.AccumulatedCode("st1", 2, "print(a + b)")
	want := "a = 1\nprint(a + b)"
	if got != want {
		t.Fatalf("missing cell should be skipped silently:\ngot  %q\nwant %q", got, want)
	}
}

func TestAccumulatedCode_ExcludesAttemptedIndexAndAbove(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 0, "a = 1", success())
	s.RecordResult("st1", 1, "b = 2", success())
	s.RecordResult("st1", 2, "c = 3", success())

	// Re-attempting cell 1: only cell 0 contributes.
	got := s.AccumulatedCode("st1", 1, "b = 20")
	want := "a = 1\nb = 20"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRecordResult_FailureIsolation(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 1, "b = 2", success())
	s.RecordResult("st1", 1, "b = oops(", failure())

	src, ok := s.CellSource("st1", 1)
	if !ok {
		t.Fatal("failing retry must not evict the prior success")
	}
	if src != "b = 2" {
		t.Fatalf("cached source should be the last successful one, got %q", src)
	}
}

func TestRecordResult_FailureAddsNothing(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 0, "broken(", failure())

	if cells := s.SuccessfulCells("st1"); len(cells) != 0 {
		t.Fatalf("failure must not create entries, got %v", cells)
	}
}

func TestRecordResult_LastSuccessWins(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 0, "a = 1", success())
	s.RecordResult("st1", 0, "a = 100", success())

	src, _ := s.CellSource("st1", 0)
	if src != "a = 100" {
		t.Fatalf("last success should win, got %q", src)
	}
}

func TestRecordResult_FirstSuccessWinsWhenConfigured(t *testing.T) {
	s := NewStore(Config{OverwriteOnSuccess: false})

	s.RecordResult("st1", 0, "a = 1", success())
	s.RecordResult("st1", 0, "a = 100", success())

	src, _ := s.CellSource("st1", 0)
	if src != "a = 1" {
		t.Fatalf("first success should be kept, got %q", src)
	}
}

func TestRecordResult_Idempotent(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 0, "a = 1", success())
	before := s.AccumulatedCode("st1", 1, "print(a)")

	s.RecordResult("st1", 0, "a = 1", success())
	after := s.AccumulatedCode("st1", 1, "print(a)")

	if before != after {
		t.Fatalf("repeat identical success changed state:\nbefore %q\nafter  %q", before, after)
	}
}

func TestResetStage(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 0, "a = 1", success())
	s.RecordResult("st2", 0, "x = 9", success())

	s.ResetStage("st1")

	if cells := s.SuccessfulCells("st1"); len(cells) != 0 {
		t.Fatalf("reset should clear the stage, got %v", cells)
	}
	if cells := s.SuccessfulCells("st2"); len(cells) != 1 {
		t.Fatalf("reset must not touch other stages, got %v", cells)
	}
}

func TestStagesAreIndependent(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.RecordResult("st1", 0, "a = 1", success())
	s.RecordResult("st2", 0, "x = 9", success())

	if got := s.AccumulatedCode("st2", 1, "print(x)"); got != "x = 9\nprint(x)" {
		t.Fatalf("stage state leaked across stages: %q", got)
	}
}
