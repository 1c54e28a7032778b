package hints

import (
	"github.com/lucidbard/codequest/internal/verdict"
)

// Hint is an LLM-generated nudge toward fixing the player's code.
type Hint struct {
	StageID string
	Level   string // "nudge", "guide", "explain"
	Text    string
}

// Input holds all context needed to generate a hint.
type Input struct {
	StageTitle string
	StageID    string
	Prompt     string
	Language   string
	CellIndex  int
	PlayerCode string
	Output     string
	RunError   string
	Verdict    *verdict.Verdict
	Attempts   int
}
