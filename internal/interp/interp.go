package interp

import "context"

// Result is the outcome of executing a learner program.
// Output and Err are mutually exclusive: a run that produced an error
// carries no captured output, and a clean run carries an empty Err.
// Learner mistakes (syntax errors, runtime panics in their code) surface
// as the Err variant — they are never returned as a Go error.
type Result struct {
	// Output is the captured print/stdout text of the run.
	Output string

	// Err is the interpreter's error message, verbatim, when the run failed.
	Err string
}

// OK reports whether the run completed without an interpreter error.
func (r Result) OK() bool { return r.Err == "" }

// Interpreter executes a single source text and captures its output.
// Implementations are synchronous: Execute returns once the program has
// finished or the context deadline fires.
type Interpreter interface {
	// Language returns the language identifier this interpreter serves,
	// e.g. "starlark" or "go".
	Language() string

	// Execute runs source and returns the captured output or the error
	// produced by the learner's program. It returns a value in all cases.
	Execute(ctx context.Context, source string) Result
}
