// Package layout draws the chrome around every screen: header bar,
// footer key hints, and the frame that stacks them with the content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lucidbard/codequest/internal/ui/theme"
)

// The TUI refuses to draw below this size; the editor and output pane
// become unreadable.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding advertised in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// chrome is the bordered bar style shared by header and footer.
var chrome = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the top bar: brand on the left, the active screen's
// title centered, stage progress on the right.
func RenderHeader(title string, stagesDone, stagesTotal int, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  CodeQuest")
	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)
	progress := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("◆ %d/%d stages", stagesDone, stagesTotal))

	return bar(brand, center, progress, width)
}

// RenderFooter draws the bottom bar listing the screen's key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return chrome.Width(width).Render("  " + strings.Join(parts, "   "))
}

// bar lays three segments across one chrome line, keeping the center
// segment centered within the bar's inner width.
func bar(left, center, right string, width int) string {
	inner := width - 4 // border and side padding
	if inner < 0 {
		inner = 0
	}

	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := inner/2 - cw/2 - lw
	if gapL < 1 {
		gapL = 1
	}
	gapR := inner - lw - gapL - cw - rw
	if gapR < 1 {
		gapR = 1
	}

	line := left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
	return chrome.Width(width).Render(line)
}

// RenderFrame stacks header, content, and footer, stretching the content
// region to fill the leftover height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}

	middle := lipgloss.NewStyle().
		Width(width).
		Height(body).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, middle, footer)
}
