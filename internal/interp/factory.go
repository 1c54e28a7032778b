package interp

import "fmt"

// New returns the interpreter for a stage's declared language.
func New(language string) (Interpreter, error) {
	switch language {
	case "starlark", "":
		return NewStarlark(), nil
	case "go":
		return NewGo(), nil
	default:
		return nil, fmt.Errorf("unknown stage language: %q", language)
	}
}
