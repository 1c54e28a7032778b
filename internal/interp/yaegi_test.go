package interp

import (
	"strings"
	"testing"
)

func TestGo_CapturesStdout(t *testing.T) {
	g := NewGo()

	res := g.Execute(t.Context(), `import "fmt"`+"\n"+`fmt.Println("hello", 40+2)`)
	if !res.OK() {
		t.Fatalf("execution failed: %s", res.Err)
	}
	if res.Output != "hello 42\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
}

func TestGo_ImportMidComposite(t *testing.T) {
	g := NewGo()

	// Shape produced by accumulating two cells where the second carries
	// its own import.
	src := "x := 40\n" + `import "fmt"` + "\n" + `fmt.Println("sum", x+2)`
	res := g.Execute(t.Context(), src)
	if !res.OK() {
		t.Fatalf("execution failed: %s", res.Err)
	}
	if res.Output != "sum 42\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
}

func TestGo_ImportBlock(t *testing.T) {
	g := NewGo()

	src := "import (\n\t\"fmt\"\n\t\"strings\"\n)\n" + `fmt.Println(strings.ToUpper("ok"))`
	res := g.Execute(t.Context(), src)
	if !res.OK() {
		t.Fatalf("execution failed: %s", res.Err)
	}
	if res.Output != "OK\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
}

func TestSplitEvalSteps(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			"leading import",
			`import "fmt"` + "\n" + `fmt.Println(1)`,
			[]string{`import "fmt"`, `fmt.Println(1)`},
		},
		{
			"duplicate imports collapse",
			`import "fmt"` + "\n" + `fmt.Println(1)` + "\n" + `import "fmt"` + "\n" + `fmt.Println(2)`,
			[]string{`import "fmt"`, "fmt.Println(1)\nfmt.Println(2)"},
		},
		{
			"no imports",
			"x := 1\nx + 1",
			[]string{"x := 1\nx + 1"},
		},
		{
			"full program untouched",
			"package main\n\nfunc main() {}",
			[]string{"package main\n\nfunc main() {}"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitEvalSteps(tt.source)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d steps, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("step %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGo_LearnerErrorIsResult(t *testing.T) {
	g := NewGo()

	res := g.Execute(t.Context(), `x := undefinedFunc()`)
	if res.OK() {
		t.Fatal("expected an error result")
	}
}

func TestGo_BlockedImport(t *testing.T) {
	g := NewGo()

	res := g.Execute(t.Context(), `import "os"`+"\n"+`os.Exit(1)`)
	if res.OK() {
		t.Fatal("os import should be rejected")
	}
	if !strings.Contains(res.Err, `"os"`) {
		t.Fatalf("rejection should name the import: %q", res.Err)
	}
}

func TestCheckGoImports(t *testing.T) {
	tests := []struct {
		name   string
		source string
		wantOK bool
	}{
		{"allowed", `import "strings"` + "\n" + `strings.ToUpper("a")`, true},
		{"blocked exec", `import "os/exec"`, false},
		{"blocked net", `package main` + "\n" + `import "net/http"`, false},
		{"no imports", `x := 1`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkGoImports(tt.source)
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}
