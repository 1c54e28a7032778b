package play

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lucidbard/codequest/internal/router"
	sess "github.com/lucidbard/codequest/internal/session"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/story"
	"github.com/lucidbard/codequest/internal/verdict"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	executions  []store.ExecutionEventData
	validations []store.ValidationEventData
	hintEvents  []store.HintEventData
	sessions    []store.SessionEventData
}

func (m *mockEventRepo) AppendExecution(_ context.Context, data store.ExecutionEventData) error {
	m.executions = append(m.executions, data)
	return nil
}
func (m *mockEventRepo) AppendValidation(_ context.Context, data store.ValidationEventData) error {
	m.validations = append(m.validations, data)
	return nil
}
func (m *mockEventRepo) AppendHint(_ context.Context, data store.HintEventData) error {
	m.hintEvents = append(m.hintEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) StageStats(_ context.Context, stageID string) (store.StageStats, error) {
	return store.StageStats{StageID: stageID}, nil
}
func (m *mockEventRepo) CompletedStages(_ context.Context) ([]string, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMRequests(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testStory() *story.Story {
	return &story.Story{
		Title: "The Signal",
		Stages: []story.Stage{
			{
				ID:        "signal-1",
				Ordinal:   1,
				Title:     "First Contact",
				Narrative: "A faint transmission crackles through the console.",
				Language:  "starlark",
				Mode:      story.ModeSingle,
				Cells: []story.Cell{
					{Index: 0, Prompt: "Print the word hello.", Starter: "# your code\n"},
				},
				Criteria: verdict.Criteria{RequiredTexts: []string{"hello"}},
			},
			{
				ID:        "signal-2",
				Ordinal:   2,
				Title:     "Triangulation",
				Narrative: "Three beacons, one origin.",
				Language:  "starlark",
				Mode:      story.ModeMultiCell,
				Cells: []story.Cell{
					{Index: 0, Prompt: "Sum the beacon distances."},
					{Index: 1, Prompt: "Print the total."},
				},
				Criteria: verdict.Criteria{RequiredNumbers: []float64{6}},
			},
		},
	}
}

func testPlayScreen() (*PlayScreen, *mockEventRepo, *mockSnapshotRepo) {
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	state := sess.NewState(testStory(), verdict.New(verdict.DefaultConfig()), eventRepo)
	return New(state, nil, snapRepo), eventRepo, snapRepo
}

func TestPlayScreen_Title(t *testing.T) {
	s, _, _ := testPlayScreen()
	if s.Title() != "First Contact" {
		t.Errorf("Title = %q, want %q", s.Title(), "First Contact")
	}
}

func TestPlayScreen_NarrativeView(t *testing.T) {
	s, _, _ := testPlayScreen()
	view := s.View(80, 24)
	if !strings.Contains(view, "First Contact") {
		t.Error("expected narrative view to show the stage title")
	}
	if !strings.Contains(view, "transmission") {
		t.Error("expected narrative view to show the story text")
	}
}

func TestPlayScreen_EnterStartsEditing(t *testing.T) {
	s, _, _ := testPlayScreen()

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PlayScreen)

	if ps.state.Phase != sess.PhaseEditing {
		t.Errorf("Phase = %v, want PhaseEditing", ps.state.Phase)
	}
	if !strings.Contains(ps.editor.Value(), "# your code") {
		t.Errorf("editor = %q, want starter text", ps.editor.Value())
	}
}

func TestPlayScreen_RunPassingCell(t *testing.T) {
	s, eventRepo, snapRepo := testPlayScreen()
	s.state.Phase = sess.PhaseEditing
	s.editor.SetValue(`print("hello, stranger")`)

	var scr router.Screen = s
	scr, cmd := scr.Update(ctrlKey('r'))
	ps := scr.(*PlayScreen)

	if ps.feedback == nil {
		t.Fatal("expected feedback after run")
	}
	if !ps.feedback.StagePassed {
		t.Errorf("expected stage to pass, got verdict %+v", ps.feedback.Verdict)
	}
	if len(eventRepo.executions) != 1 {
		t.Errorf("execution events = %d, want 1", len(eventRepo.executions))
	}
	if len(eventRepo.validations) != 1 {
		t.Errorf("validation events = %d, want 1", len(eventRepo.validations))
	}

	// Passing a stage schedules a snapshot save.
	if cmd == nil {
		t.Fatal("expected a save command after a pass")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected a save result message")
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
}

func TestPlayScreen_RunFailingCell(t *testing.T) {
	s, _, _ := testPlayScreen()
	s.state.Phase = sess.PhaseEditing
	s.editor.SetValue(`print("nothing useful")`)

	var scr router.Screen = s
	scr, _ = scr.Update(ctrlKey('r'))
	ps := scr.(*PlayScreen)

	if ps.feedback == nil {
		t.Fatal("expected feedback after run")
	}
	if ps.feedback.StagePassed {
		t.Error("expected stage to fail")
	}
	if ps.attempts["signal-1"] != 1 {
		t.Errorf("attempts = %d, want 1", ps.attempts["signal-1"])
	}

	// Dismissing returns to editing the same cell.
	scr, _ = ps.Update(keyPress(' '))
	ps = scr.(*PlayScreen)
	if ps.feedback != nil {
		t.Error("expected feedback to be dismissed")
	}
	if ps.state.Phase != sess.PhaseEditing {
		t.Errorf("Phase = %v, want PhaseEditing", ps.state.Phase)
	}
}

func TestPlayScreen_RunBrokenCell(t *testing.T) {
	s, _, _ := testPlayScreen()
	s.state.Phase = sess.PhaseEditing
	s.editor.SetValue(`print(`)

	var scr router.Screen = s
	scr, _ = scr.Update(ctrlKey('r'))
	ps := scr.(*PlayScreen)

	if ps.feedback == nil {
		t.Fatal("expected feedback after run")
	}
	if ps.feedback.Result.OK() {
		t.Error("expected a failed run")
	}
	if ps.feedback.Verdict != nil {
		t.Error("expected no verdict for a failed run")
	}

	view := ps.View(80, 24)
	if !strings.Contains(view, "didn't run") {
		t.Error("expected run error feedback")
	}
}

func TestPlayScreen_PassAdvancesToNextNarrative(t *testing.T) {
	s, _, _ := testPlayScreen()
	s.state.Phase = sess.PhaseEditing
	s.editor.SetValue(`print("hello")`)

	var scr router.Screen = s
	scr, _ = scr.Update(ctrlKey('r'))
	ps := scr.(*PlayScreen)

	// Dismiss the pass feedback.
	scr, _ = ps.Update(keyPress(' '))
	ps = scr.(*PlayScreen)

	if ps.state.Phase != sess.PhaseNarrative {
		t.Errorf("Phase = %v, want PhaseNarrative", ps.state.Phase)
	}
	if ps.Title() != "Triangulation" {
		t.Errorf("Title = %q, want next stage", ps.Title())
	}
}

func TestPlayScreen_CellNavigation(t *testing.T) {
	s, _, _ := testPlayScreen()
	s.state.StageIndex = 1
	s.state.Phase = sess.PhaseEditing
	s.seedEditor()

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	ps := scr.(*PlayScreen)
	if ps.state.CellIndex != 1 {
		t.Errorf("CellIndex = %d, want 1", ps.state.CellIndex)
	}

	scr, _ = ps.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	ps = scr.(*PlayScreen)
	if ps.state.CellIndex != 0 {
		t.Errorf("CellIndex = %d, want 0", ps.state.CellIndex)
	}
}

func TestPlayScreen_SeedEditorPrefersCachedSource(t *testing.T) {
	s, _, _ := testPlayScreen()
	s.state.Phase = sess.PhaseEditing
	s.editor.SetValue(`print("hello")`)

	var scr router.Screen = s
	scr, _ = scr.Update(ctrlKey('r'))
	ps := scr.(*PlayScreen)

	// Back up to the completed stage and reseed.
	ps.state.StageIndex = 0
	ps.state.CellIndex = 0
	ps.seedEditor()

	if ps.editor.Value() != `print("hello")` {
		t.Errorf("editor = %q, want the cached passing source", ps.editor.Value())
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testPlayScreen()
	s.state.Phase = sess.PhaseEditing

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PlayScreen)
	if !ps.showingQuit {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PlayScreen)
	if ps.showingQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestPlayScreen_QuitConfirm_Yes(t *testing.T) {
	s, eventRepo, snapRepo := testPlayScreen()
	s.state.Phase = sess.PhaseEditing

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a navigation command after quit confirmation")
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}

	ended := false
	for _, e := range eventRepo.sessions {
		if e.Action == "ended" {
			ended = true
		}
	}
	if !ended {
		t.Error("expected a session ended event")
	}
}

func TestPlayScreen_KeyHints(t *testing.T) {
	s, _, _ := testPlayScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints in the narrative phase")
	}
	s.state.Phase = sess.PhaseEditing
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints in the editing phase")
	}
}
