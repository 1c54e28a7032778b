package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Continue", Disabled: true},
		{Label: "New Game"},
		{Label: "Stats"},
	})

	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1 (first enabled)", m.Selected)
	}

	m, _ = m.Update(key('k'))
	if m.Selected != 1 {
		t.Errorf("up from first enabled moved to %d, want 1", m.Selected)
	}

	m, _ = m.Update(key('j'))
	if m.Selected != 2 {
		t.Errorf("down moved to %d, want 2", m.Selected)
	}

	m, _ = m.Update(key('j'))
	if m.Selected != 2 {
		t.Errorf("down at bottom moved to %d, want 2", m.Selected)
	}
}

func TestMenuEnterFiresAction(t *testing.T) {
	fired := false
	m := NewMenu([]MenuItem{
		{Label: "Go", Action: func() tea.Cmd {
			fired = true
			return nil
		}},
	})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !fired {
		t.Error("expected Enter to invoke the selected item's action")
	}
}

func TestMenuViewMarksSelection(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Alpha"}, {Label: "Beta"}})
	view := m.View()
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("view has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "▸") {
		t.Error("expected marker on the selected line")
	}
	if strings.Contains(lines[1], "▸") {
		t.Error("unexpected marker on an unselected line")
	}
}

func TestProgressBarShowsCountsAndPercent(t *testing.T) {
	bar := ProgressBar("Stages", 3, 5, 50)
	if !strings.Contains(bar, "Stages 3/5") {
		t.Errorf("bar missing label: %q", bar)
	}
	if !strings.Contains(bar, "60%") {
		t.Errorf("bar missing percent: %q", bar)
	}
}

func TestProgressBarZeroTotal(t *testing.T) {
	bar := ProgressBar("Stages", 0, 0, 50)
	if !strings.Contains(bar, "0%") {
		t.Errorf("bar with zero total should show 0%%: %q", bar)
	}
}
