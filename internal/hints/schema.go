package hints

import "github.com/lucidbard/codequest/internal/llm"

// HintSchema defines the JSON schema for hint generation.
var HintSchema = &llm.Schema{
	Name:        "coding-hint",
	Description: "A short hint nudging the player toward fixing their code",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type":        "string",
				"enum":        []any{"nudge", "guide", "explain"},
				"description": "How directive the hint is: nudge points at the area, guide names the fix, explain walks through it",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "The hint text (2-4 sentences). Never contains a complete solution",
			},
		},
		"required":             []any{"level", "hint"},
		"additionalProperties": false,
	},
}
