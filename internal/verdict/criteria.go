package verdict

// Criteria declares the pass conditions for a stage. All fields are
// optional; a category that is absent is vacuously satisfied. The record
// is immutable content configuration — validators never modify it.
type Criteria struct {
	// RequiredTexts are phrases that must appear in the output,
	// case-insensitively, with no whitespace normalization.
	RequiredTexts []string `json:"requiredTexts,omitempty" yaml:"requiredTexts,omitempty"`

	// RequiredNumbers are values that must appear as numeric tokens in
	// the output, within tolerance.
	RequiredNumbers []float64 `json:"requiredNumbers,omitempty" yaml:"requiredNumbers,omitempty"`

	// OutputPatterns are regexes matched anywhere in the output.
	OutputPatterns []string `json:"outputPatterns,omitempty" yaml:"outputPatterns,omitempty"`

	// CodePatterns are regexes matched against the submitted source, for
	// requirements like "use a for loop". Combined with the output
	// categories by logical AND.
	CodePatterns []string `json:"codePatterns,omitempty" yaml:"codePatterns,omitempty"`
}

// Empty reports whether no checks are declared at all.
func (c Criteria) Empty() bool {
	return len(c.RequiredTexts) == 0 &&
		len(c.RequiredNumbers) == 0 &&
		len(c.OutputPatterns) == 0 &&
		len(c.CodePatterns) == 0
}

// Category names one class of requirement, used in diagnostics.
type Category string

const (
	CategoryNone            Category = "none"
	CategoryCodePatterns    Category = "codePatterns"
	CategoryRequiredTexts   Category = "requiredTexts"
	CategoryRequiredNumbers Category = "requiredNumbers"
	CategoryOutputPatterns  Category = "outputPatterns"
)
