package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lucidbard/codequest/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Duration:        12 * time.Minute,
		Executions:      9,
		Failures:        2,
		StagesCompleted: 3,
		StagesTotal:     5,
		HintsUsed:       1,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Session complete") {
		t.Error("expected in-progress title for an unfinished story")
	}
}

func TestSummaryScreen_Display_StoryDone(t *testing.T) {
	sum := testSummary()
	sum.StagesCompleted = 5
	sum.StoryDone = true
	view := New(sum).View(80, 24)
	if !strings.Contains(view, "Story complete!") {
		t.Error("expected completion title when the story is done")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}
