// Package verdict decides whether a learner's captured output (and the
// source they submitted) satisfies a stage's success criteria.
//
// Matching is layered: an ordered list of independent strategies runs
// over the output, each covering one category of requirement, plus a
// code-pattern check over the source. Every declared category must be
// satisfied for an overall pass; undeclared categories pass vacuously.
// A negative verdict is ordinary data, never an error — one stage's
// mismatch must not abort the session.
package verdict

import "regexp"

// Config holds the tolerance constants for numeric matching. They are
// deliberate defaults rather than hard requirements; content that needs
// stricter matching can supply its own.
type Config struct {
	// AbsTolerance is the absolute difference under which two numbers
	// are considered equal.
	AbsTolerance float64

	// RelTolerance is the relative difference, as a fraction of the
	// expected value, under which two numbers are considered equal.
	RelTolerance float64
}

// DefaultConfig returns the default numeric tolerances.
func DefaultConfig() Config {
	return Config{
		AbsTolerance: 1e-6,
		RelTolerance: 0.001, // 0.1% of the expected value
	}
}

// Verdict is the result of one validation call. Transient — the caller
// renders or logs it, nothing stores it here.
type Verdict struct {
	// Passed is the overall pass/fail decision.
	Passed bool

	// Strategy names the first strategy that satisfied a declared
	// category on a pass, or "none" on failure.
	Strategy string

	// Diagnostic describes the first unmet requirement on failure, for
	// hint generation. Empty on a pass.
	Diagnostic Diagnostic
}

// Diagnostic identifies which requirement category failed and why.
type Diagnostic struct {
	// Category is the first unmet category, checked in the fixed order:
	// code patterns, required texts, required numbers, output patterns.
	// The order is purely for hint quality; it never affects Passed.
	Category Category

	// Detail is a human-readable description of the unmet item.
	Detail string

	// ConfigProblem marks failures caused by malformed criteria (e.g. an
	// uninterpretable regex) rather than by the learner's program. The
	// host reports these as content bugs, not as learner mistakes.
	ConfigProblem bool
}

// Validator applies the layered matching strategies. It is a pure
// function of its inputs with no shared mutable state and may be invoked
// freely without synchronization.
type Validator struct {
	cfg        Config
	strategies []Strategy
}

// New creates a Validator with the standard strategy order: substring,
// numeric tolerance, pattern.
func New(cfg Config) *Validator {
	return &Validator{
		cfg: cfg,
		strategies: []Strategy{
			SubstringStrategy{},
			NumberStrategy{},
			PatternStrategy{},
		},
	}
}

// Validate decides whether output and source satisfy the criteria.
// It always returns a value; malformed criteria fail closed with a
// ConfigProblem diagnostic instead of panicking.
func (v *Validator) Validate(output, source string, c Criteria) Verdict {
	codeStatus, codeDetail := checkCodePatterns(source, c)

	results := make([]strategyOutcome, 0, len(v.strategies))
	for _, st := range v.strategies {
		status, detail := st.Check(output, c, v.cfg)
		results = append(results, strategyOutcome{st.Name(), status, detail})
	}

	passed := codeStatus != StatusUnsatisfied
	for _, r := range results {
		if r.status == StatusUnsatisfied {
			passed = false
		}
	}

	if passed {
		name := passStrategy(results)
		if name == "none" && codeStatus == StatusSatisfied {
			name = "code"
		}
		return Verdict{Passed: true, Strategy: name}
	}

	// Diagnostic order: code patterns first, then output categories in
	// strategy order.
	if codeStatus == StatusUnsatisfied {
		return failVerdict(CategoryCodePatterns, codeDetail, c)
	}
	for i, r := range results {
		if r.status == StatusUnsatisfied {
			return failVerdict(v.strategies[i].Category(), r.detail, c)
		}
	}

	// Passed was false, so some category above reported unsatisfied; if a
	// strategy ever breaks that invariant, still hand the hint path a
	// usable diagnostic.
	return unsatisfiedFallback()
}

// unsatisfiedFallback is the verdict for a failure no strategy claimed.
// The hint path reads Diagnostic unconditionally, so even this case
// carries a category and detail.
func unsatisfiedFallback() Verdict {
	return Verdict{
		Strategy:   "none",
		Diagnostic: Diagnostic{Category: CategoryNone, Detail: "criteria not satisfied"},
	}
}

// strategyOutcome pairs a strategy's name with its tri-state result.
type strategyOutcome struct {
	strategy string
	status   Status
	detail   string
}

// passStrategy picks the name reported for a passing verdict: the first
// strategy in order that actually satisfied a declared category, or
// "none" when nothing was declared at all.
func passStrategy(results []strategyOutcome) string {
	for _, r := range results {
		if r.status == StatusSatisfied {
			return r.strategy
		}
	}
	return "none"
}

func failVerdict(cat Category, detail string, c Criteria) Verdict {
	return Verdict{
		Passed:   false,
		Strategy: "none",
		Diagnostic: Diagnostic{
			Category:      cat,
			Detail:        detail,
			ConfigProblem: hasMalformedPatterns(c, cat),
		},
	}
}

// hasMalformedPatterns reports whether the failing category failed
// because its declared regexes do not compile.
func hasMalformedPatterns(c Criteria, cat Category) bool {
	var patterns []string
	switch cat {
	case CategoryCodePatterns:
		patterns = c.CodePatterns
	case CategoryOutputPatterns:
		patterns = c.OutputPatterns
	default:
		return false
	}
	for _, pat := range patterns {
		if _, err := regexp.Compile(pat); err != nil {
			return true
		}
	}
	return false
}

// CheckPatterns verifies that every regex declared in the criteria
// compiles. Content loaders call this at load time so configuration
// mistakes surface before a learner ever hits them.
func CheckPatterns(c Criteria) error {
	for _, pat := range c.OutputPatterns {
		if _, err := regexp.Compile(pat); err != nil {
			return err
		}
	}
	for _, pat := range c.CodePatterns {
		if _, err := regexp.Compile(pat); err != nil {
			return err
		}
	}
	return nil
}
