package verdict

import "testing"

func newValidator() *Validator { return New(DefaultConfig()) }

func TestSubstring_CaseInsensitive(t *testing.T) {
	v := newValidator()

	got := v.Validate("The answer is 42", "", Criteria{RequiredTexts: []string{"answer"}})
	if !got.Passed {
		t.Fatalf("case-insensitive containment should pass: %+v", got)
	}
	if got.Strategy != "substring" {
		t.Fatalf("expected substring strategy, got %q", got.Strategy)
	}

	got = v.Validate("no clue", "", Criteria{RequiredTexts: []string{"Answer"}})
	if got.Passed {
		t.Fatal("missing phrase should fail")
	}
	if got.Diagnostic.Category != CategoryRequiredTexts {
		t.Fatalf("diagnostic category = %q", got.Diagnostic.Category)
	}
}

func TestSubstring_NoWhitespaceNormalization(t *testing.T) {
	v := newValidator()

	got := v.Validate("the  answer", "", Criteria{RequiredTexts: []string{"the answer"}})
	if got.Passed {
		t.Fatal("containment is exact; doubled spaces must not match")
	}
}

func TestNumeric_Tolerance(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name   string
		output string
		want   float64
		pass   bool
	}{
		{"float formatting drift", "Result: 2.9999999", 3, true},
		{"integer vs decimal", "got 3.0 total", 3, true},
		{"exact integer", "42", 42, true},
		{"negative", "delta is -7.5", -7.5, true},
		{"embedded token no false match", "Result: 142", 42, false},
		{"prefix digits no false match", "Result: 421", 42, false},
		{"one of many tokens", "tried 7, then 13, then 42", 42, true},
		{"no tokens at all", "nothing numeric here", 42, false},
		{"far off", "Result: 40", 42, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.output, "", Criteria{RequiredNumbers: []float64{tt.want}})
			if got.Passed != tt.pass {
				t.Fatalf("output %q want %v: passed=%v, expected %v",
					tt.output, tt.want, got.Passed, tt.pass)
			}
			if tt.pass && got.Strategy != "numeric" {
				t.Fatalf("expected numeric strategy, got %q", got.Strategy)
			}
			if !tt.pass && got.Diagnostic.Category != CategoryRequiredNumbers {
				t.Fatalf("diagnostic category = %q", got.Diagnostic.Category)
			}
		})
	}
}

func TestNumeric_AllRequiredNumbersMustMatch(t *testing.T) {
	v := newValidator()

	c := Criteria{RequiredNumbers: []float64{3, 7}}
	if got := v.Validate("3 and 7", "", c); !got.Passed {
		t.Fatalf("both present should pass: %+v", got)
	}
	if got := v.Validate("only 3 here", "", c); got.Passed {
		t.Fatal("missing one required number should fail")
	}
}

func TestPattern_UnanchoredMatch(t *testing.T) {
	v := newValidator()

	c := Criteria{OutputPatterns: []string{`\d{4}-\d{2}-\d{2}`}}
	got := v.Validate("today is 2026-08-26, enjoy", "", c)
	if !got.Passed {
		t.Fatalf("pattern anywhere in output should pass: %+v", got)
	}
	if got.Strategy != "pattern" {
		t.Fatalf("expected pattern strategy, got %q", got.Strategy)
	}

	got = v.Validate("no date here", "", c)
	if got.Passed {
		t.Fatal("absent pattern should fail")
	}
	if got.Diagnostic.Category != CategoryOutputPatterns {
		t.Fatalf("diagnostic category = %q", got.Diagnostic.Category)
	}
}

func TestCodePatterns_ANDedWithOutput(t *testing.T) {
	v := newValidator()

	c := Criteria{
		CodePatterns:    []string{`for\s+\w+\s+in`},
		RequiredNumbers: []float64{10},
	}

	// Number present but code pattern unmet: overall fail, diagnosed as
	// the code category (checked first).
	got := v.Validate("total: 10", "total = 1+2+3+4", c)
	if got.Passed {
		t.Fatal("unmet code pattern must fail overall even when output matches")
	}
	if got.Diagnostic.Category != CategoryCodePatterns {
		t.Fatalf("diagnostic category = %q", got.Diagnostic.Category)
	}

	// Both met: pass.
	got = v.Validate("total: 10", "for x in range(5):\n    total += x", c)
	if !got.Passed {
		t.Fatalf("both categories met should pass: %+v", got)
	}
}

func TestCodePatternsOnly_Pass(t *testing.T) {
	v := newValidator()

	got := v.Validate("", "while True:", Criteria{CodePatterns: []string{`while`}})
	if !got.Passed {
		t.Fatalf("code-only criteria should pass on matching source: %+v", got)
	}
	if got.Strategy != "code" {
		t.Fatalf("expected code strategy, got %q", got.Strategy)
	}
}

func TestEmptyCriteria_VacuouslySatisfied(t *testing.T) {
	v := newValidator()

	got := v.Validate("anything at all", "any source", Criteria{})
	if !got.Passed {
		t.Fatalf("no declared checks should pass vacuously: %+v", got)
	}
}

func TestMalformedRegex_FailsClosed(t *testing.T) {
	v := newValidator()

	got := v.Validate("output text", "", Criteria{OutputPatterns: []string{`([unclosed`}})
	if got.Passed {
		t.Fatal("malformed pattern must fail closed")
	}
	if !got.Diagnostic.ConfigProblem {
		t.Fatal("malformed pattern should be flagged as a configuration problem")
	}

	got = v.Validate("", "source", Criteria{CodePatterns: []string{`([unclosed`}})
	if got.Passed {
		t.Fatal("malformed code pattern must fail closed")
	}
	if !got.Diagnostic.ConfigProblem {
		t.Fatal("malformed code pattern should be flagged as a configuration problem")
	}
}

func TestLearnerMismatch_NotConfigProblem(t *testing.T) {
	v := newValidator()

	got := v.Validate("wrong output", "", Criteria{OutputPatterns: []string{`right`}})
	if got.Diagnostic.ConfigProblem {
		t.Fatal("an ordinary mismatch is not a configuration problem")
	}
}

func TestDiagnosticOrder(t *testing.T) {
	v := newValidator()

	// Everything unmet: the first reported category follows the fixed
	// order codePatterns, requiredTexts, requiredNumbers, outputPatterns.
	c := Criteria{
		RequiredTexts:   []string{"gone"},
		RequiredNumbers: []float64{99},
		OutputPatterns:  []string{`absent`},
		CodePatterns:    []string{`missing`},
	}
	got := v.Validate("", "", c)
	if got.Diagnostic.Category != CategoryCodePatterns {
		t.Fatalf("first diagnostic should be codePatterns, got %q", got.Diagnostic.Category)
	}

	c.CodePatterns = nil
	got = v.Validate("", "", c)
	if got.Diagnostic.Category != CategoryRequiredTexts {
		t.Fatalf("next diagnostic should be requiredTexts, got %q", got.Diagnostic.Category)
	}

	c.RequiredTexts = nil
	got = v.Validate("", "", c)
	if got.Diagnostic.Category != CategoryRequiredNumbers {
		t.Fatalf("next diagnostic should be requiredNumbers, got %q", got.Diagnostic.Category)
	}

	c.RequiredNumbers = nil
	got = v.Validate("", "", c)
	if got.Diagnostic.Category != CategoryOutputPatterns {
		t.Fatalf("last diagnostic should be outputPatterns, got %q", got.Diagnostic.Category)
	}
}

func TestMultipleCategories_AllMustHold(t *testing.T) {
	v := newValidator()

	c := Criteria{
		RequiredTexts:   []string{"sum"},
		RequiredNumbers: []float64{10},
	}
	if got := v.Validate("sum is 10", "", c); !got.Passed {
		t.Fatalf("both categories met should pass: %+v", got)
	}
	if got := v.Validate("sum is pending", "", c); got.Passed {
		t.Fatal("unmet numbers should fail despite text match")
	}
	if got := v.Validate("value 10", "", c); got.Passed {
		t.Fatal("unmet text should fail despite number match")
	}
}

func TestCheckPatterns(t *testing.T) {
	if err := CheckPatterns(Criteria{OutputPatterns: []string{`\d+`}, CodePatterns: []string{`for`}}); err != nil {
		t.Fatalf("valid patterns should check clean: %v", err)
	}
	if err := CheckPatterns(Criteria{OutputPatterns: []string{`([`}}); err == nil {
		t.Fatal("invalid pattern should be reported")
	}
}

func TestUnsatisfiedFallbackCarriesDiagnostic(t *testing.T) {
	got := unsatisfiedFallback()
	if got.Passed {
		t.Fatal("fallback verdict must fail")
	}
	if got.Diagnostic.Category != CategoryNone {
		t.Errorf("category = %q, want %q", got.Diagnostic.Category, CategoryNone)
	}
	if got.Diagnostic.Detail == "" {
		t.Error("fallback diagnostic must carry a detail for hint generation")
	}
}
