package verdict

import (
	"fmt"
	"regexp"
	"strings"
)

// Status is the tri-state result of one strategy against one criteria
// record.
type Status int

const (
	// StatusNotApplicable means the criteria declare nothing this
	// strategy checks.
	StatusNotApplicable Status = iota

	// StatusSatisfied means every item this strategy checks is met.
	StatusSatisfied

	// StatusUnsatisfied means at least one item this strategy checks is
	// unmet.
	StatusUnsatisfied
)

// Strategy is one independent output-matching rule. Strategies are
// stateless and safe for concurrent use; new ones can be added to the
// validator's ordered list without touching existing ones.
type Strategy interface {
	// Name returns a short identifier for diagnostics, e.g. "substring".
	Name() string

	// Category returns the criteria category this strategy satisfies.
	Category() Category

	// Check evaluates the strategy's category against output.
	// Detail describes the first unmet item when unsatisfied.
	Check(output string, c Criteria, cfg Config) (status Status, detail string)
}

// SubstringStrategy checks each required phrase for case-insensitive
// containment. Exact containment only — no whitespace normalization
// beyond case folding.
type SubstringStrategy struct{}

func (SubstringStrategy) Name() string       { return "substring" }
func (SubstringStrategy) Category() Category { return CategoryRequiredTexts }

func (SubstringStrategy) Check(output string, c Criteria, _ Config) (Status, string) {
	if len(c.RequiredTexts) == 0 {
		return StatusNotApplicable, ""
	}
	lower := strings.ToLower(output)
	for _, phrase := range c.RequiredTexts {
		if !strings.Contains(lower, strings.ToLower(phrase)) {
			return StatusUnsatisfied, fmt.Sprintf("missing required text %q", phrase)
		}
	}
	return StatusSatisfied, ""
}

// NumberStrategy extracts numeric tokens from the output and checks each
// required value against them with tolerance. Learner output formatting
// is unpredictable (extra prose, varying decimal places), so an exact
// string match would be far too brittle.
type NumberStrategy struct{}

func (NumberStrategy) Name() string       { return "numeric" }
func (NumberStrategy) Category() Category { return CategoryRequiredNumbers }

func (NumberStrategy) Check(output string, c Criteria, cfg Config) (Status, string) {
	if len(c.RequiredNumbers) == 0 {
		return StatusNotApplicable, ""
	}
	tokens := extractNumbers(output)
	for _, want := range c.RequiredNumbers {
		if !anyWithinTolerance(tokens, want, cfg) {
			return StatusUnsatisfied, fmt.Sprintf("missing required number %v", want)
		}
	}
	return StatusSatisfied, ""
}

// PatternStrategy matches each declared output regex anywhere in the
// output (unanchored). A regex that fails to compile makes this category
// unsatisfiable: configuration mistakes fail closed instead of passing
// learners through or crashing the validator.
type PatternStrategy struct{}

func (PatternStrategy) Name() string       { return "pattern" }
func (PatternStrategy) Category() Category { return CategoryOutputPatterns }

func (PatternStrategy) Check(output string, c Criteria, _ Config) (Status, string) {
	if len(c.OutputPatterns) == 0 {
		return StatusNotApplicable, ""
	}
	for _, pat := range c.OutputPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return StatusUnsatisfied, fmt.Sprintf("output pattern %q is not a valid regex", pat)
		}
		if !re.MatchString(output) {
			return StatusUnsatisfied, fmt.Sprintf("output does not match pattern %q", pat)
		}
	}
	return StatusSatisfied, ""
}

// checkCodePatterns evaluates the code-pattern category against the
// submitted source. Same fail-closed rule for malformed regexes.
func checkCodePatterns(source string, c Criteria) (Status, string) {
	if len(c.CodePatterns) == 0 {
		return StatusNotApplicable, ""
	}
	for _, pat := range c.CodePatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return StatusUnsatisfied, fmt.Sprintf("code pattern %q is not a valid regex", pat)
		}
		if !re.MatchString(source) {
			return StatusUnsatisfied, fmt.Sprintf("code does not match pattern %q", pat)
		}
	}
	return StatusSatisfied, ""
}
