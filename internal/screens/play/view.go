package play

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	sess "github.com/lucidbard/codequest/internal/session"
	"github.com/lucidbard/codequest/internal/ui/theme"
	"github.com/lucidbard/codequest/internal/verdict"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuit {
		return renderQuitConfirm(width)
	}
	if s.feedback != nil {
		return s.renderFeedback(width)
	}

	switch s.state.Phase {
	case sess.PhaseNarrative:
		return s.renderNarrative(width, height)
	case sess.PhaseEditing:
		return s.renderEditing(width, height)
	case sess.PhaseSummary:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("\n\n\n  The story is complete! Press Enter for your summary.")
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Loading...")
}

// renderNarrative renders the stage's story text.
func (s *PlayScreen) renderNarrative(width, height int) string {
	stage := s.state.CurrentStage()
	if stage == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	title := fmt.Sprintf("Stage %d: %s", stage.Ordinal, stage.Title)
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 72))
	narrative := theme.Narrative.Render(stage.Narrative)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card.Render(narrative)))
	b.WriteString("\n\n")

	mode := "one editor, one run"
	if len(stage.Cells) > 1 {
		mode = fmt.Sprintf("%d cells, executed cumulatively", len(stage.Cells))
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", stage.Language, mode)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to begin..."))

	return b.String()
}

// renderEditing renders the editor, the cell strip, and the last output.
func (s *PlayScreen) renderEditing(width, height int) string {
	stage := s.state.CurrentStage()
	cell := s.state.CurrentCell()
	if stage == nil || cell == nil {
		return ""
	}

	var b strings.Builder

	// Info line: stage on the left, run stats on the right.
	elapsed := time.Since(s.state.StartTime)
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", stage.Title))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("runs %d  %d:%02d", s.state.Executions, mins, secs))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Cell strip for multi-cell stages.
	if len(stage.Cells) > 1 {
		b.WriteString("  " + s.renderCellStrip(stage.ID, len(stage.Cells)))
		b.WriteString("\n")
	}

	// Prompt.
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		PaddingLeft(2).
		Render(cell.Prompt))
	b.WriteString("\n\n")

	// Editor.
	editorWidth := min(width-6, 100)
	s.editor.Model.SetWidth(editorWidth)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.editor.View()))
	b.WriteString("\n")

	// Last output.
	if s.state.LastResult.Output != "" || s.state.LastResult.Err != "" {
		b.WriteString("\n")
		b.WriteString(s.renderOutputPane(width))
	}

	// Hint.
	if s.hintWait {
		b.WriteString("\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Thinking of a hint..."))
	} else if s.hint != nil {
		b.WriteString("\n")
		b.WriteString(s.renderHintPanel(width))
	}

	return b.String()
}

// renderCellStrip shows per-cell status markers for a multi-cell stage.
func (s *PlayScreen) renderCellStrip(stageID string, cellCount int) string {
	good := make(map[int]bool)
	for _, idx := range s.state.Accum.SuccessfulCells(stageID) {
		good[idx] = true
	}

	parts := make([]string, 0, cellCount)
	for i := 0; i < cellCount; i++ {
		label := fmt.Sprintf(" %d ", i+1)
		switch {
		case i == s.state.CellIndex:
			parts = append(parts, theme.Selected.Render("["+strings.TrimSpace(label)+"]"))
		case good[i]:
			parts = append(parts, theme.Passed.Render("✓"+strings.TrimSpace(label)))
		default:
			parts = append(parts, theme.Hint.Render("·"+strings.TrimSpace(label)))
		}
	}
	return strings.Join(parts, "  ")
}

// renderOutputPane shows the most recent run's stdout or error.
func (s *PlayScreen) renderOutputPane(width int) string {
	var header, body string
	if s.state.LastResult.OK() {
		header = lipgloss.NewStyle().Foreground(theme.TextDim).Render("output")
		body = theme.Code.Render(strings.TrimRight(s.state.LastResult.Output, "\n"))
	} else {
		header = theme.RunError.Render("error")
		body = lipgloss.NewStyle().Foreground(theme.Error).Render(s.state.LastResult.Err)
	}

	pane := theme.OutputPane.Width(min(width-6, 100)).Render(header + "\n" + body)
	return lipgloss.NewStyle().PaddingLeft(2).Render(pane)
}

// renderHintPanel shows the most recent hint.
func (s *PlayScreen) renderHintPanel(width int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("hint (%s)", s.hint.Level))
	body := theme.Hint.Render(s.hint.Text)

	pane := theme.OutputPane.
		BorderForeground(theme.Accent).
		Width(min(width-6, 100)).
		Render(label + "\n" + body)
	return lipgloss.NewStyle().PaddingLeft(2).Render(pane)
}

// renderFeedback renders the run outcome overlay.
func (s *PlayScreen) renderFeedback(width int) string {
	out := s.feedback

	var b strings.Builder
	b.WriteString("\n\n")

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	switch {
	case !out.Result.OK():
		centered(theme.Failed, "Your code didn't run")
		b.WriteString("\n")
		errBox := theme.OutputPane.
			BorderForeground(theme.Error).
			Width(min(width-8, 80)).
			Render(lipgloss.NewStyle().Foreground(theme.Error).Render(out.Result.Err))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, errBox))
		b.WriteString("\n")

	case out.StagePassed:
		centered(theme.Passed, "Stage complete!")
		if out.StoryDone {
			b.WriteString("\n")
			centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "You finished the story!")
		}
		if out.Result.Output != "" {
			b.WriteString("\n")
			outBox := theme.OutputPane.
				Width(min(width-8, 80)).
				Render(theme.Code.Render(strings.TrimRight(out.Result.Output, "\n")))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, outBox))
			b.WriteString("\n")
		}

	default:
		centered(theme.Failed, "Not quite")
		if out.Verdict != nil && out.Verdict.Diagnostic.Detail != "" {
			b.WriteString("\n")
			centered(lipgloss.NewStyle().Foreground(theme.TextDim), diagnosticLine(out.Verdict))
		}
		if out.Result.Output != "" {
			b.WriteString("\n")
			outBox := theme.OutputPane.
				Width(min(width-8, 80)).
				Render(theme.Code.Render(strings.TrimRight(out.Result.Output, "\n")))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, outBox))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Press any key to continue...")

	return b.String()
}

// diagnosticLine formats the verdict's unmet criterion for display.
func diagnosticLine(v *verdict.Verdict) string {
	if v.Diagnostic.ConfigProblem {
		return "This stage's pass criteria are misconfigured. " + v.Diagnostic.Detail
	}
	return v.Diagnostic.Detail
}

// renderQuitConfirm renders the leave-story confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the story?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
