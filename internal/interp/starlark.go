package interp

import (
	"context"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// StarlarkInterpreter runs learner code in an embedded Starlark
// interpreter. Starlark is Python-like, which keeps the curriculum's
// beginner track familiar, and the interpreter is fully sandboxed: no
// filesystem, network, or process access exists unless predeclared here.
type StarlarkInterpreter struct {
	opts *syntax.FileOptions
}

// NewStarlark creates a Starlark interpreter with the language extensions
// learners expect from Python-style code: while loops, top-level control
// flow, reassignment, sets, and recursion.
func NewStarlark() *StarlarkInterpreter {
	return &StarlarkInterpreter{
		opts: &syntax.FileOptions{
			Set:               true,
			While:             true,
			TopLevelControl:   true,
			GlobalReassign:    true,
			LoadBindsGlobally: false,
			Recursion:         true,
		},
	}
}

func (s *StarlarkInterpreter) Language() string { return "starlark" }

// Execute runs source on a fresh thread, capturing every print call.
// A context deadline cancels the thread mid-run; the cancellation reason
// surfaces in the Result's Err like any other learner-visible error.
func (s *StarlarkInterpreter) Execute(ctx context.Context, source string) Result {
	var out strings.Builder

	thread := &starlark.Thread{
		Name: "stage",
		Print: func(_ *starlark.Thread, msg string) {
			out.WriteString(msg)
			out.WriteByte('\n')
		},
	}

	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel("execution timed out")
		case <-watchDone:
		}
	}()

	_, err := starlark.ExecFileOptions(s.opts, thread, "stage.star", source, nil)
	if err != nil {
		return Result{Err: starlarkErrorText(err)}
	}

	return Result{Output: out.String()}
}

// starlarkErrorText extracts the message to show the learner.
// EvalError carries a backtrace; the curriculum only wants the final line.
func starlarkErrorText(err error) string {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		return evalErr.Msg
	}
	return err.Error()
}
