package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lucidbard/codequest/internal/hints"
	"github.com/lucidbard/codequest/internal/router"
	"github.com/lucidbard/codequest/internal/screens/home"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/story"
	"github.com/lucidbard/codequest/internal/ui/layout"
	"github.com/lucidbard/codequest/internal/verdict"
)

// Options carries the dependencies for the TUI. Nil services degrade
// gracefully: no repos disables persistence, no hint service disables
// hints.
type Options struct {
	Story        *story.Story
	Validator    *verdict.Validator
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	HintService  *hints.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router      *router.Router
	opts        Options
	stagesDone  int
	stagesTotal int
	width       int
	height      int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Story, opts.Validator, opts.EventRepo, opts.SnapshotRepo, opts.HintService)
	m := AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
	if opts.Story != nil {
		m.stagesTotal = len(opts.Story.Stages)
	}
	m.stagesDone = snapshotStages(opts.SnapshotRepo)
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

	case router.PopMsg:
		// Returning toward home: refresh header progress.
		m.stagesDone = snapshotStages(m.opts.SnapshotRepo)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stagesDone, m.stagesTotal, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its key hints, falling back
// to generic navigation hints.
func (m AppModel) footerHints(active router.Screen) []layout.KeyHint {
	if hp, ok := active.(router.KeyHinter); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// snapshotStages reads the completed stage count from the latest snapshot.
func snapshotStages(repo store.SnapshotRepo) int {
	if repo == nil {
		return 0
	}
	snap, err := repo.Latest(context.Background())
	if err != nil || snap == nil {
		return 0
	}
	return len(snap.Data.CompletedStages)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
