package story

import "github.com/lucidbard/codequest/internal/verdict"

// ExecutionMode says how a stage's code is organized.
type ExecutionMode string

const (
	// ModeSingle is one editor, one run.
	ModeSingle ExecutionMode = "single"

	// ModeMultiCell splits the exercise into ordered cells that execute
	// cumulatively.
	ModeMultiCell ExecutionMode = "multi-cell"
)

// Stage is one curriculum unit. Immutable once loaded.
type Stage struct {
	// ID is the stable stage identifier, e.g. "ch1-variables".
	ID string `json:"id" yaml:"id"`

	// Ordinal is the 1-based position in the story.
	Ordinal int `json:"ordinal" yaml:"ordinal"`

	// Title is the short stage name shown in the header.
	Title string `json:"title" yaml:"title"`

	// Narrative is the story text framing the challenge.
	Narrative string `json:"narrative" yaml:"narrative"`

	// Language selects the interpreter: "starlark" or "go".
	Language string `json:"language" yaml:"language"`

	// Mode is single or multi-cell.
	Mode ExecutionMode `json:"mode" yaml:"mode"`

	// Cells are the ordered code fragments. A single-mode stage has
	// exactly one. Never reordered or deleted at runtime.
	Cells []Cell `json:"cells" yaml:"cells"`

	// Criteria are the declarative pass conditions for the stage.
	Criteria verdict.Criteria `json:"criteria" yaml:"criteria"`
}

// Cell is one independently runnable fragment within a stage.
type Cell struct {
	// Index is the cell's position; stable, defines execution order.
	Index int `json:"index" yaml:"index"`

	// Prompt is the instruction shown above the editor.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Starter is the pre-filled source text.
	Starter string `json:"starter" yaml:"starter"`
}

// Story is a full curriculum: an ordered sequence of stages.
type Story struct {
	Title  string  `json:"title" yaml:"title"`
	Stages []Stage `json:"stages" yaml:"stages"`

	byID map[string]*Stage
}

// StageByID returns the stage with the given ID, or nil.
func (s *Story) StageByID(id string) *Stage {
	return s.byID[id]
}

// StageIndexByID returns the zero-based index of the stage with the
// given ID.
func (s *Story) StageIndexByID(id string) (int, bool) {
	for i := range s.Stages {
		if s.Stages[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// StageAt returns the stage with the given ordinal, or nil.
func (s *Story) StageAt(ordinal int) *Stage {
	if ordinal < 1 || ordinal > len(s.Stages) {
		return nil
	}
	return &s.Stages[ordinal-1]
}

// index builds the ID lookup. Called by the loader after validation.
func (s *Story) index() {
	s.byID = make(map[string]*Stage, len(s.Stages))
	for i := range s.Stages {
		s.byID[s.Stages[i].ID] = &s.Stages[i]
	}
}
