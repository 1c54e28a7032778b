package interp

import (
	"bytes"
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// goAllowedImports is the stdlib subset learner code may import on the Go
// track. Everything with filesystem, network, process, or unsafe access
// stays out.
var goAllowedImports = map[string]bool{
	"fmt":           true,
	"strings":       true,
	"strconv":       true,
	"math":          true,
	"math/rand":     true,
	"sort":          true,
	"unicode":       true,
	"errors":        true,
	"regexp":        true,
	"bytes":         true,
	"time":          true,
	"encoding/json": true,
}

// GoInterpreter runs learner code through yaegi, the embedded Go
// interpreter. Interpreting avoids shelling out to the Go toolchain for
// every cell and keeps execution inside the process sandbox.
type GoInterpreter struct{}

// NewGo creates a Go-track interpreter.
func NewGo() *GoInterpreter {
	return &GoInterpreter{}
}

func (g *GoInterpreter) Language() string { return "go" }

// Execute evaluates source in a fresh yaegi interpreter with stdout and
// stderr captured. Each run gets its own interpreter: accumulated code is
// re-submitted whole, so no state needs to survive between runs.
//
// yaegi accepts import declarations and statements only as separate REPL
// steps; a single Eval of a source that opens with an import falls into
// file-declaration mode and rejects the statements that follow. Cells are
// statement-style, so imports are hoisted out and evaluated first.
func (g *GoInterpreter) Execute(ctx context.Context, source string) Result {
	if err := checkGoImports(source); err != nil {
		return Result{Err: err.Error()}
	}

	var out bytes.Buffer
	i := interp.New(interp.Options{Stdout: &out, Stderr: &out})
	if err := i.Use(stdlib.Symbols); err != nil {
		return Result{Err: fmt.Sprintf("interpreter setup: %v", err)}
	}

	for _, step := range splitEvalSteps(source) {
		if _, err := i.EvalWithContext(ctx, step); err != nil {
			return Result{Err: err.Error()}
		}
	}

	return Result{Output: out.String()}
}

// splitEvalSteps hoists import declarations (single-line or parenthesized
// blocks) out of the source and returns them as individual eval steps
// ahead of the remaining statement body. Accumulated multi-cell code can
// carry an import in any cell, so imports are collected wherever they
// appear, not just at the top. A source that declares its own package is
// a complete program and passes through as one step.
func splitEvalSteps(source string) []string {
	if strings.HasPrefix(strings.TrimSpace(source), "package ") {
		return []string{source}
	}

	var imports, body []string
	lines := strings.Split(source, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "import (") {
			start := i
			for i < len(lines) && !strings.Contains(lines[i], ")") {
				i++
			}
			if i >= len(lines) {
				i = len(lines) - 1
			}
			imports = append(imports, strings.Join(lines[start:i+1], "\n"))
			continue
		}
		if strings.HasPrefix(line, "import ") {
			imports = append(imports, line)
			continue
		}
		body = append(body, lines[i])
	}

	steps := make([]string, 0, len(imports)+1)
	seen := make(map[string]bool)
	for _, imp := range imports {
		if seen[imp] {
			continue
		}
		seen[imp] = true
		steps = append(steps, imp)
	}
	if rest := strings.Join(body, "\n"); strings.TrimSpace(rest) != "" {
		steps = append(steps, rest)
	}
	return steps
}

// checkGoImports parses the source's import set and rejects anything
// outside the allowlist. Parse failures are left for yaegi to report,
// since its messages are the ones learners see for ordinary syntax errors.
func checkGoImports(source string) error {
	text := source
	if !strings.HasPrefix(strings.TrimSpace(text), "package ") {
		text = "package main\n" + text
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "cell.go", text, parser.ImportsOnly)
	if err != nil {
		return nil
	}
	for _, imp := range f.Imports {
		path := imp.Path.Value
		if len(path) >= 2 {
			path = path[1 : len(path)-1]
		}
		if !goAllowedImports[path] {
			return fmt.Errorf("import %q is not available in stage code", path)
		}
	}
	return nil
}
