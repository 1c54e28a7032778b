package interp

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestStarlark_CapturesPrint(t *testing.T) {
	s := NewStarlark()

	res := s.Execute(t.Context(), `print("hello")`+"\n"+`print(1 + 2)`)
	if !res.OK() {
		t.Fatalf("execution failed: %s", res.Err)
	}
	if res.Output != "hello\n3\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
}

func TestStarlark_WhileAndReassign(t *testing.T) {
	s := NewStarlark()

	src := strings.Join([]string{
		"total = 0",
		"i = 1",
		"while i <= 4:",
		"    total += i",
		"    i += 1",
		"print(total)",
	}, "\n")

	res := s.Execute(t.Context(), src)
	if !res.OK() {
		t.Fatalf("execution failed: %s", res.Err)
	}
	if res.Output != "10\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
}

func TestStarlark_LearnerErrorIsResult(t *testing.T) {
	s := NewStarlark()

	res := s.Execute(t.Context(), `print(undefined_name)`)
	if res.OK() {
		t.Fatal("expected an error result")
	}
	if res.Output != "" {
		t.Fatalf("error result should carry no output, got %q", res.Output)
	}
	if !strings.Contains(res.Err, "undefined_name") {
		t.Fatalf("error should name the missing variable: %q", res.Err)
	}
}

func TestStarlark_SyntaxErrorIsResult(t *testing.T) {
	s := NewStarlark()

	res := s.Execute(t.Context(), `print(`)
	if res.OK() {
		t.Fatal("expected a syntax error result")
	}
}

func TestStarlark_ContextCancelsRun(t *testing.T) {
	s := NewStarlark()

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	src := strings.Join([]string{
		"i = 0",
		"while True:",
		"    i += 1",
	}, "\n")

	done := make(chan Result, 1)
	go func() { done <- s.Execute(ctx, src) }()

	select {
	case res := <-done:
		if res.OK() {
			t.Fatal("infinite loop should have been cancelled")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancellation did not stop the run")
	}
}
