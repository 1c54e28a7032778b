package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lucidbard/codequest/internal/hints"
	"github.com/lucidbard/codequest/internal/router"
	"github.com/lucidbard/codequest/internal/screens/play"
	"github.com/lucidbard/codequest/internal/screens/stats"
	sess "github.com/lucidbard/codequest/internal/session"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/story"
	"github.com/lucidbard/codequest/internal/ui/components"
	"github.com/lucidbard/codequest/internal/ui/layout"
	"github.com/lucidbard/codequest/internal/ui/theme"
	"github.com/lucidbard/codequest/internal/verdict"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu        components.Menu
	stagesDone  int
	stagesTotal int
	hasSave     bool
	storyTitle  string
}

var _ router.Screen = (*HomeScreen)(nil)
var _ router.KeyHinter = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *story.Story, validator *verdict.Validator, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, hintSvc *hints.Service) *HomeScreen {
	// Load the latest snapshot to show progress on the menu.
	var snap *store.Snapshot
	if snapRepo != nil {
		snap, _ = snapRepo.Latest(context.Background())
	}

	hasSave := snap != nil && len(snap.Data.CompletedStages) > 0
	stagesDone := 0
	if snap != nil {
		stagesDone = len(snap.Data.CompletedStages)
	}

	continueLabel := "START STORY"
	if hasSave {
		continueLabel = "CONTINUE STORY"
	}

	items := []components.MenuItem{
		{Label: continueLabel, Action: func() tea.Cmd {
			return func() tea.Msg {
				state := sess.NewState(st, validator, eventRepo)
				if err := sess.RestoreSnapshot(context.Background(), state, snapRepo); err != nil {
					state = sess.NewState(st, validator, eventRepo)
				}
				return router.PushMsg{To: play.New(state, hintSvc, snapRepo)}
			}
		}},
		{Label: "START OVER", Disabled: !hasSave, Action: func() tea.Cmd {
			return func() tea.Msg {
				state := sess.NewState(st, validator, eventRepo)
				return router.PushMsg{To: play.New(state, hintSvc, snapRepo)}
			}
		}},
		{Label: "STATS", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{To: stats.New(eventRepo, st)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		stagesDone:  stagesDone,
		stagesTotal: len(st.Stages),
		hasSave:     hasSave,
		storyTitle:  st.Title,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("C O D E Q U E S T"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(h.storyTitle))
	b.WriteString("\n\n")

	if h.hasSave {
		bar := components.ProgressBar("Progress", h.stagesDone, h.stagesTotal, min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
		b.WriteString("\n\n")
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
