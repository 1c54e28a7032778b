package hints

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lucidbard/codequest/internal/llm"
	"github.com/lucidbard/codequest/internal/verdict"
)

func validHintJSON() json.RawMessage {
	return json.RawMessage(`{
		"level": "nudge",
		"hint": "Look at what your print call actually outputs. Is the greeting spelled the way the task asks?"
	}`)
}

func testInput() Input {
	return Input{
		StageTitle: "Greeting",
		StageID:    "stage-1",
		Prompt:     "Print a greeting containing the word hello",
		Language:   "starlark",
		PlayerCode: `print("goodbye")`,
		Output:     "goodbye\n",
		Attempts:   1,
		Verdict: &verdict.Verdict{
			Passed: false,
			Diagnostic: verdict.Diagnostic{
				Category: verdict.CategoryRequiredTexts,
				Detail:   `output does not contain "hello"`,
			},
		},
	}
}

func waitForHint(t *testing.T, svc *Service) (*Hint, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if hint, err, done := svc.ConsumeHint(); done {
			return hint, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for hint generation")
	return nil, nil
}

func TestService_GeneratesHint(t *testing.T) {
	mock := llm.NewMock(llm.MockResult{JSON: validHintJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestHint(t.Context(), testInput())

	hint, err := waitForHint(t, svc)
	if err != nil || hint == nil {
		t.Fatalf("expected hint to be generated, got hint=%v err=%v", hint, err)
	}
	if hint.Level != "nudge" {
		t.Errorf("level = %q, want nudge", hint.Level)
	}
	if hint.StageID != "stage-1" {
		t.Errorf("stage = %q, want stage-1", hint.StageID)
	}
	if hint.Text == "" {
		t.Error("expected non-empty hint text")
	}
}

func TestService_ConsumeClearsHint(t *testing.T) {
	mock := llm.NewMock(llm.MockResult{JSON: validHintJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestHint(t.Context(), testInput())

	if hint, err := waitForHint(t, svc); err != nil || hint == nil {
		t.Fatalf("expected hint, got hint=%v err=%v", hint, err)
	}
	if _, _, done := svc.ConsumeHint(); done {
		t.Error("expected second consume to find an empty mailbox")
	}
}

func TestService_GenerationError(t *testing.T) {
	mock := llm.NewMock(llm.MockResult{
		Err: &llm.Error{Fault: llm.FaultTransient, Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestHint(t.Context(), testInput())

	hint, err := waitForHint(t, svc)
	if err == nil {
		t.Fatal("expected generation error to surface")
	}
	if hint != nil {
		t.Error("expected no hint after failed generation")
	}
	if _, _, done := svc.ConsumeHint(); done {
		t.Error("error consumption should clear the mailbox")
	}
}

func TestBuildHintUserMessage_IncludesDiagnostic(t *testing.T) {
	msg := buildHintUserMessage(testInput())

	for _, want := range []string{"Greeting", "starlark", `print("goodbye")`, "missing expected text"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(msg, `"nudge" level`) {
		t.Errorf("expected nudge level on first attempt, got:\n%s", msg)
	}
}

func TestBuildHintUserMessage_RunError(t *testing.T) {
	input := testInput()
	input.Output = ""
	input.RunError = "undefined: total"
	input.Verdict = nil
	input.Attempts = 3

	msg := buildHintUserMessage(input)
	if !strings.Contains(msg, "undefined: total") {
		t.Error("prompt missing run error")
	}
	if !strings.Contains(msg, `"explain" level`) {
		t.Error("expected explain level on third attempt")
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		attempts int
		want     string
	}{
		{0, "nudge"},
		{1, "nudge"},
		{2, "guide"},
		{3, "explain"},
		{7, "explain"},
	}
	for _, tt := range tests {
		if got := levelFor(tt.attempts); got != tt.want {
			t.Errorf("levelFor(%d) = %q, want %q", tt.attempts, got, tt.want)
		}
	}
}
