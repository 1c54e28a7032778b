package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/lucidbard/codequest/internal/router"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/story"
	"github.com/lucidbard/codequest/internal/ui/layout"
	"github.com/lucidbard/codequest/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats     []store.StageStats
	Completed map[string]bool
	Err       error
}

// StatsScreen displays per-stage execution and validation history.
type StatsScreen struct {
	eventRepo store.EventRepo
	story     *story.Story
	stats     []store.StageStats
	completed map[string]bool
	selected  int
	loaded    bool
	errMsg    string
}

var _ router.Screen = (*StatsScreen)(nil)
var _ router.KeyHinter = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo, s *story.Story) *StatsScreen {
	return &StatsScreen{
		eventRepo: eventRepo,
		story:     s,
		completed: make(map[string]bool),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		stats := make([]store.StageStats, 0, len(s.story.Stages))
		for _, stage := range s.story.Stages {
			st, err := s.eventRepo.StageStats(ctx, stage.ID)
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
			stats = append(stats, st)
		}

		done, err := s.eventRepo.CompletedStages(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		completed := make(map[string]bool, len(done))
		for _, id := range done {
			completed[id] = true
		}

		return statsLoadedMsg{Stats: stats, Completed: completed}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.completed = msg.Completed
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.stats)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).Bold(true).
		Render("Stage history"))
	b.WriteString("\n\n")

	anyActivity := false
	for i, stage := range s.story.Stages {
		st := s.stats[i]
		if st.Executions > 0 {
			anyActivity = true
		}

		marker := "·"
		if s.completed[stage.ID] {
			marker = "✓"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s %d. %s    %d runs (%d failed)    %d checks (%d passed)",
			prefix, marker, stage.Ordinal, stage.Title,
			st.Executions, st.Failures, st.Validations, st.Passes)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.completed[stage.ID] {
			style = style.Foreground(theme.Success)
		}
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if !anyActivity {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No runs yet. Start the story!"))
	}

	return b.String()
}
