package hints

import (
	"fmt"
	"strings"

	"github.com/lucidbard/codequest/internal/verdict"
)

const hintSystemPrompt = `You are a patient coding mentor inside a narrative programming game. The player is stuck on a coding challenge and asked for a hint. Help them find the fix themselves: point at the problem, never paste a corrected program.`

func buildHintUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Stage: %s\n", input.StageTitle))
	b.WriteString(fmt.Sprintf("Language: %s\n", input.Language))
	b.WriteString(fmt.Sprintf("Task: %s\n", input.Prompt))
	b.WriteString(fmt.Sprintf("Attempts so far: %d\n", input.Attempts))

	b.WriteString("\nPlayer's code:\n```\n")
	b.WriteString(input.PlayerCode)
	b.WriteString("\n```\n")

	if input.RunError != "" {
		b.WriteString(fmt.Sprintf("\nThe run failed with: %s\n", input.RunError))
	} else {
		b.WriteString("\nOutput:\n")
		if input.Output == "" {
			b.WriteString("(nothing was printed)\n")
		} else {
			b.WriteString(input.Output)
			if !strings.HasSuffix(input.Output, "\n") {
				b.WriteByte('\n')
			}
		}
	}

	if input.Verdict != nil && !input.Verdict.Passed {
		b.WriteString(fmt.Sprintf("\nWhat's missing: %s\n", describeDiagnostic(input.Verdict.Diagnostic)))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write one hint at the "%s" level:
- nudge: name the area of the code to look at, nothing more.
- guide: say what is wrong and what kind of change fixes it.
- explain: walk through why the current code misbehaves, step by step.
Keep it to 2-4 sentences. Never include a complete corrected program.`, levelFor(input.Attempts)))

	return b.String()
}

// levelFor escalates hint directness with repeated attempts.
func levelFor(attempts int) string {
	switch {
	case attempts <= 1:
		return "nudge"
	case attempts == 2:
		return "guide"
	default:
		return "explain"
	}
}

// describeDiagnostic renders a verdict diagnostic as plain prose for
// the prompt.
func describeDiagnostic(d verdict.Diagnostic) string {
	switch d.Category {
	case verdict.CategoryCodePatterns:
		return fmt.Sprintf("the code must use a required construct (%s)", d.Detail)
	case verdict.CategoryRequiredTexts:
		return fmt.Sprintf("the output is missing expected text (%s)", d.Detail)
	case verdict.CategoryRequiredNumbers:
		return fmt.Sprintf("the output is missing an expected number (%s)", d.Detail)
	case verdict.CategoryOutputPatterns:
		return fmt.Sprintf("the output doesn't match the expected shape (%s)", d.Detail)
	default:
		return d.Detail
	}
}
