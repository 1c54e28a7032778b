package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lucidbard/codequest/internal/ui/theme"
)

// ProgressBar renders a labeled completion bar like
// "Stages 3/7  ███░░░░  42%" sized to fit width.
func ProgressBar(label string, done, total, width int) string {
	var percent float64
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	if percent > 1 {
		percent = 1
	}

	prefix := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%s %d/%d", label, done, total)) + "  "
	suffix := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(percent*100)))

	barWidth := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}

	return prefix +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		suffix
}
