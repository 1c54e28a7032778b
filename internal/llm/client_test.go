package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lucidbard/codequest/internal/store"
)

// scriptedBackend plays back a fixed sequence of results.
type scriptedBackend struct {
	results []MockResult
	calls   int
}

func (s *scriptedBackend) complete(context.Context, Prompt) (*Completion, error) {
	if s.calls >= len(s.results) {
		panic("scripted backend exhausted")
	}
	r := s.results[s.calls]
	s.calls++
	if r.Err != nil {
		return nil, r.Err
	}
	return &Completion{JSON: r.JSON, Model: "scripted"}, nil
}

func (s *scriptedBackend) model() string { return "scripted" }

// recordingRepo counts LLM request events; everything else is a no-op.
type recordingRepo struct {
	requests []store.LLMRequestEventData
}

func (r *recordingRepo) AppendExecution(context.Context, store.ExecutionEventData) error   { return nil }
func (r *recordingRepo) AppendValidation(context.Context, store.ValidationEventData) error { return nil }
func (r *recordingRepo) AppendHint(context.Context, store.HintEventData) error             { return nil }
func (r *recordingRepo) AppendSession(context.Context, store.SessionEventData) error       { return nil }

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.requests = append(r.requests, data)
	return nil
}

func (r *recordingRepo) StageStats(context.Context, string) (store.StageStats, error) {
	return store.StageStats{}, nil
}

func (r *recordingRepo) CompletedStages(context.Context) ([]string, error) { return nil, nil }

func (r *recordingRepo) LLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func fastRetry(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseWait: time.Millisecond, MaxWait: time.Millisecond}
}

func levelSchema() *Schema {
	return &Schema{
		Name: "level-only",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"level": map[string]any{"type": "string"},
			},
			"required":             []any{"level"},
			"additionalProperties": false,
		},
	}
}

func TestComplete_RetriesTransientFaults(t *testing.T) {
	b := &scriptedBackend{results: []MockResult{
		{Err: transient(errors.New("connection reset"))},
		{Err: transient(errors.New("connection reset"))},
		{JSON: json.RawMessage(`{"ok":true}`)},
	}}
	c := &Client{backend: b, retry: fastRetry(3)}

	comp, err := c.Complete(t.Context(), Prompt{User: "hi"})
	if err != nil {
		t.Fatalf("expected recovery after retries: %v", err)
	}
	if b.calls != 3 {
		t.Errorf("calls = %d, want 3", b.calls)
	}
	if string(comp.JSON) != `{"ok":true}` {
		t.Errorf("unexpected content: %s", comp.JSON)
	}
}

func TestComplete_TruncationSurfacesImmediately(t *testing.T) {
	b := &scriptedBackend{results: []MockResult{{Err: truncated()}}}
	c := &Client{backend: b, retry: fastRetry(3)}

	_, err := c.Complete(t.Context(), Prompt{User: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}
	if b.calls != 1 {
		t.Errorf("calls = %d, want 1: truncation must not be retried", b.calls)
	}
	var fe *Error
	if !errors.As(err, &fe) || fe.Fault != FaultTruncated {
		t.Errorf("expected truncation fault, got %v", err)
	}
}

func TestComplete_SchemaViolationRetriedOnce(t *testing.T) {
	b := &scriptedBackend{results: []MockResult{
		{JSON: json.RawMessage(`{"wrong":"shape"}`)},
		{JSON: json.RawMessage(`{"wrong":"shape"}`)},
		{JSON: json.RawMessage(`{"wrong":"shape"}`)},
	}}
	c := &Client{backend: b, retry: fastRetry(3)}

	_, err := c.Complete(t.Context(), Prompt{User: "hi", Schema: levelSchema()})
	if err == nil {
		t.Fatal("expected schema violation to fail")
	}
	if b.calls != 2 {
		t.Errorf("calls = %d, want 2: bad output gets exactly one retry", b.calls)
	}
}

func TestComplete_SchemaViolationThenValid(t *testing.T) {
	b := &scriptedBackend{results: []MockResult{
		{JSON: json.RawMessage(`not json at all`)},
		{JSON: json.RawMessage(`{"level":"nudge"}`)},
	}}
	c := &Client{backend: b, retry: fastRetry(3)}

	comp, err := c.Complete(t.Context(), Prompt{User: "hi", Schema: levelSchema()})
	if err != nil {
		t.Fatalf("expected second attempt to pass: %v", err)
	}
	if string(comp.JSON) != `{"level":"nudge"}` {
		t.Errorf("unexpected content: %s", comp.JSON)
	}
}

func TestComplete_RecordsEveryAttempt(t *testing.T) {
	repo := &recordingRepo{}
	b := &scriptedBackend{results: []MockResult{
		{Err: transient(errors.New("down"))},
		{JSON: json.RawMessage(`{"ok":true}`)},
	}}
	c := &Client{backend: b, retry: fastRetry(3), events: repo}

	if _, err := c.Complete(t.Context(), Prompt{System: "sys", User: "usr", Purpose: "hint"}); err != nil {
		t.Fatal(err)
	}

	if len(repo.requests) != 2 {
		t.Fatalf("recorded %d requests, want 2", len(repo.requests))
	}
	first, second := repo.requests[0], repo.requests[1]
	if first.Success || first.ErrorMessage == "" {
		t.Errorf("first attempt should record the failure: %+v", first)
	}
	if !second.Success || second.ResponseBody != `{"ok":true}` {
		t.Errorf("second attempt should record the response: %+v", second)
	}
	for _, req := range repo.requests {
		if req.Purpose != "hint" {
			t.Errorf("purpose = %q, want hint", req.Purpose)
		}
		if !strings.Contains(req.RequestBody, "sys") || !strings.Contains(req.RequestBody, "usr") {
			t.Errorf("transcript missing prompt text: %q", req.RequestBody)
		}
	}
}

func TestRetryPolicy_WaitHonorsThrottleHint(t *testing.T) {
	p := fastRetry(3)
	got := p.wait(0, throttled(errors.New("429"), 5*time.Second))
	if got != 5*time.Second {
		t.Errorf("wait = %v, want the backend's 5s hint", got)
	}
}

func TestRetryPolicy_WaitStaysUnderCap(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, BaseWait: time.Second, MaxWait: 2 * time.Second}
	for attempt := 0; attempt < 5; attempt++ {
		if got := p.wait(attempt, transient(errors.New("x"))); got > 2400*time.Millisecond {
			t.Errorf("attempt %d: wait %v exceeds cap plus jitter", attempt, got)
		}
	}
}

func TestNewBackend_UnknownName(t *testing.T) {
	if _, err := newBackend(t.Context(), Config{Backend: "frontier"}); err == nil {
		t.Fatal("expected unknown backend to be rejected")
	}
}
