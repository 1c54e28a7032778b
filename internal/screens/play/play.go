package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lucidbard/codequest/internal/hints"
	"github.com/lucidbard/codequest/internal/router"
	"github.com/lucidbard/codequest/internal/screens/summary"
	sess "github.com/lucidbard/codequest/internal/session"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/ui/components"
	"github.com/lucidbard/codequest/internal/ui/layout"
)

// execTimeout bounds a single cell run.
const execTimeout = 10 * time.Second

// PlayScreen implements router.Screen for the active playthrough.
type PlayScreen struct {
	state    *sess.State
	hintSvc  *hints.Service
	snapRepo store.SnapshotRepo

	editor   components.CodeEditor
	feedback *sess.Outcome
	hint     *hints.Hint
	hintWait bool
	attempts map[string]int // stage ID → failed runs since last pass

	showingQuit bool
	errMsg      string
}

var _ router.Screen = (*PlayScreen)(nil)
var _ router.KeyHinter = (*PlayScreen)(nil)

// New creates a new PlayScreen with injected dependencies. hintSvc and
// snapRepo may be nil; hints and persistence degrade gracefully.
func New(state *sess.State, hintSvc *hints.Service, snapRepo store.SnapshotRepo) *PlayScreen {
	s := &PlayScreen{
		state:    state,
		hintSvc:  hintSvc,
		snapRepo: snapRepo,
		editor:   components.NewCodeEditor("Write your code here..."),
		attempts: make(map[string]int),
	}
	s.seedEditor()
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	sess.Begin(context.Background(), s.state)
	return tea.Batch(s.editor.Init(), clockCmd())
}

func (s *PlayScreen) Title() string {
	if stage := s.state.CurrentStage(); stage != nil {
		return stage.Title
	}
	return "CodeQuest"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave story"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	switch s.state.Phase {
	case sess.PhaseNarrative:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Leave"},
		}
	case sess.PhaseEditing:
		keys := []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Run"},
		}
		if stage := s.state.CurrentStage(); stage != nil && len(stage.Cells) > 1 {
			keys = append(keys, layout.KeyHint{Key: "Tab", Description: "Next cell"})
		}
		if s.hintSvc != nil {
			keys = append(keys, layout.KeyHint{Key: "Ctrl+H", Description: "Hint"})
		}
		keys = append(keys,
			layout.KeyHint{Key: "Ctrl+X", Description: "Reset stage"},
			layout.KeyHint{Key: "Esc", Description: "Leave"},
		)
		return keys
	case sess.PhaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
		}
	}
	return nil
}

func (s *PlayScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if s.state.Phase == sess.PhaseSummary {
			return s, nil
		}
		return s, clockCmd()

	case hintPollMsg:
		return s.handleHintPoll()

	case hintReadyMsg:
		return s.handleHintReady(msg)

	case saveDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the editor while editing.
	if s.state.Phase == sess.PhaseEditing && s.feedback == nil && !s.showingQuit {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopMsg{} }
	}

	// Quit confirmation dialog.
	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.showingQuit = false
			return s.endSession()
		case "n", "N", "esc":
			s.showingQuit = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay — any key dismisses.
	if s.feedback != nil {
		return s.dismissFeedback()
	}

	switch s.state.Phase {
	case sess.PhaseNarrative:
		switch key {
		case "enter":
			s.state.Phase = sess.PhaseEditing
			s.seedEditor()
			return s, s.editor.Focus()
		case "esc":
			s.showingQuit = true
			return s, nil
		}
		return s, nil

	case sess.PhaseEditing:
		switch key {
		case "esc":
			s.showingQuit = true
			return s, nil
		case "ctrl+r":
			return s.runCell()
		case "ctrl+h":
			return s.requestHint()
		case "tab":
			if sess.NextCell(s.state) {
				s.hint = nil
				s.seedEditor()
			}
			return s, nil
		case "shift+tab":
			if sess.PrevCell(s.state) {
				s.hint = nil
				s.seedEditor()
			}
			return s, nil
		case "ctrl+x":
			sess.ResetStage(s.state)
			s.hint = nil
			s.feedback = nil
			s.seedEditor()
			return s, nil
		}

		// Forward to the editor.
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd

	case sess.PhaseSummary:
		if key == "enter" || key == "esc" {
			return s.endSession()
		}
		return s, nil
	}

	return s, nil
}

// runCell executes the current editor contents through the session
// pipeline and shows the outcome as feedback.
func (s *PlayScreen) runCell() (router.Screen, tea.Cmd) {
	source := s.editor.Value()
	if source == "" {
		return s, nil
	}
	stage := s.state.CurrentStage()
	if stage == nil {
		return s, nil
	}
	stageID := stage.ID

	ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
	defer cancel()

	outcome, err := sess.HandleExecution(ctx, s.state, source)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if outcome.StagePassed {
		s.attempts[stageID] = 0
	} else {
		s.attempts[stageID]++
	}

	s.feedback = outcome
	s.hint = nil

	// Persist progress after a completed stage.
	if outcome.StagePassed && s.snapRepo != nil {
		return s, s.saveCmd()
	}
	return s, nil
}

func (s *PlayScreen) dismissFeedback() (router.Screen, tea.Cmd) {
	passed := s.feedback != nil && s.feedback.StagePassed
	s.feedback = nil

	if s.state.Phase == sess.PhaseSummary {
		return s.endSession()
	}
	if passed {
		// completeStage already advanced to the next narrative.
		return s, nil
	}
	// Back to editing the same cell.
	return s, s.editor.Focus()
}

// requestHint kicks off async hint generation and starts polling.
func (s *PlayScreen) requestHint() (router.Screen, tea.Cmd) {
	if s.hintSvc == nil || s.hintWait {
		return s, nil
	}
	stage := s.state.CurrentStage()
	cell := s.state.CurrentCell()
	if stage == nil || cell == nil {
		return s, nil
	}

	input := hints.Input{
		StageTitle: stage.Title,
		StageID:    stage.ID,
		Prompt:     cell.Prompt,
		Language:   stage.Language,
		CellIndex:  s.state.CellIndex,
		PlayerCode: s.editor.Value(),
		Output:     s.state.LastResult.Output,
		RunError:   s.state.LastResult.Err,
		Verdict:    s.state.LastVerdict,
		Attempts:   s.attempts[stage.ID],
	}

	s.hintWait = true
	s.hintSvc.RequestHint(context.Background(), input)
	return s, hintPollCmd()
}

func (s *PlayScreen) handleHintPoll() (router.Screen, tea.Cmd) {
	if !s.hintWait || s.hintSvc == nil {
		return s, nil
	}
	if hint, err, done := s.hintSvc.ConsumeHint(); done {
		return s, func() tea.Msg { return hintReadyMsg{Hint: hint, Err: err} }
	}
	return s, hintPollCmd()
}

func (s *PlayScreen) handleHintReady(msg hintReadyMsg) (router.Screen, tea.Cmd) {
	s.hintWait = false
	if msg.Err != nil || msg.Hint == nil {
		s.hint = &hints.Hint{Level: "nudge", Text: "Hints are unavailable right now. Re-read the prompt and try again."}
		return s, nil
	}

	s.hint = msg.Hint
	s.state.HintsUsed++

	if s.state.EventRepo != nil {
		stage := s.state.CurrentStage()
		stageID := ""
		if stage != nil {
			stageID = stage.ID
		}
		_ = s.state.EventRepo.AppendHint(context.Background(), store.HintEventData{
			SessionID:  s.state.SessionID,
			StageID:    stageID,
			CellIndex:  s.state.CellIndex,
			PlayerCode: s.editor.Value(),
			HintText:   msg.Hint.Text,
		})
	}
	return s, nil
}

// endSession records the end event, saves a snapshot, and shows the summary.
func (s *PlayScreen) endSession() (router.Screen, tea.Cmd) {
	ctx := context.Background()
	sess.End(ctx, s.state)
	if err := sess.SaveSnapshot(ctx, s.state, s.snapRepo); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	sum := sess.BuildSummary(s.state)
	return s, func() tea.Msg {
		return router.ReplaceMsg{To: summary.New(sum)}
	}
}

// seedEditor fills the editor with the cell's last good source, or its
// starter text on first visit.
func (s *PlayScreen) seedEditor() {
	stage := s.state.CurrentStage()
	cell := s.state.CurrentCell()
	if stage == nil || cell == nil {
		s.editor.Reset()
		return
	}
	if src, ok := s.state.Accum.CellSource(stage.ID, s.state.CellIndex); ok {
		s.editor.SetValue(src)
		return
	}
	s.editor.SetValue(cell.Starter)
}

func (s *PlayScreen) saveCmd() tea.Cmd {
	state := s.state
	repo := s.snapRepo
	return func() tea.Msg {
		return saveDoneMsg{Err: sess.SaveSnapshot(context.Background(), state, repo)}
	}
}

// hintPollCmd polls the hint mailbox at a short interval.
func hintPollCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return hintPollMsg(t)
	})
}

// clockCmd returns a 1-second tick command.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
