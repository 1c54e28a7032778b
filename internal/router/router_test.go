package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type fakeScreen struct {
	name    string
	initRan bool
	got     []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	f.got = append(f.got, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestNavigation(t *testing.T) {
	tests := []struct {
		name       string
		steps      func(r *Router, next *fakeScreen)
		wantDepth  int
		wantActive string
		wantInit   bool
	}{
		{
			name:       "push grows the stack",
			steps:      func(r *Router, next *fakeScreen) { r.Push(next) },
			wantDepth:  2,
			wantActive: "next",
			wantInit:   true,
		},
		{
			name: "pop returns to the screen below",
			steps: func(r *Router, next *fakeScreen) {
				r.Push(next)
				r.Pop()
			},
			wantDepth:  1,
			wantActive: "base",
			wantInit:   true,
		},
		{
			name:       "pop never removes the bottom screen",
			steps:      func(r *Router, _ *fakeScreen) { r.Pop() },
			wantDepth:  1,
			wantActive: "base",
		},
		{
			name:       "replace swaps without growing",
			steps:      func(r *Router, next *fakeScreen) { r.Replace(next) },
			wantDepth:  1,
			wantActive: "next",
			wantInit:   true,
		},
		{
			name:       "push message routes to Push",
			steps:      func(r *Router, next *fakeScreen) { r.Update(PushMsg{To: next}) },
			wantDepth:  2,
			wantActive: "next",
			wantInit:   true,
		},
		{
			name: "pop message routes to Pop",
			steps: func(r *Router, next *fakeScreen) {
				r.Push(next)
				r.Update(PopMsg{})
			},
			wantDepth:  1,
			wantActive: "base",
			wantInit:   true,
		},
		{
			name:       "replace message routes to Replace",
			steps:      func(r *Router, next *fakeScreen) { r.Update(ReplaceMsg{To: next}) },
			wantDepth:  1,
			wantActive: "next",
			wantInit:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeScreen{name: "base"})
			next := &fakeScreen{name: "next"}

			tt.steps(r, next)

			if r.Depth() != tt.wantDepth {
				t.Errorf("depth = %d, want %d", r.Depth(), tt.wantDepth)
			}
			if got := r.Active().Title(); got != tt.wantActive {
				t.Errorf("active = %q, want %q", got, tt.wantActive)
			}
			if next.initRan != tt.wantInit {
				t.Errorf("next.initRan = %v, want %v", next.initRan, tt.wantInit)
			}
		})
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	base := &fakeScreen{name: "base"}
	top := &fakeScreen{name: "top"}
	r := New(base)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x'})

	if len(top.got) != 1 {
		t.Fatalf("active screen saw %d messages, want 1", len(top.got))
	}
	if len(base.got) != 0 {
		t.Errorf("covered screen saw %d messages, want 0", len(base.got))
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "base"})
	r.Push(&fakeScreen{name: "top"})

	if got := r.View(80, 24); got != "top" {
		t.Errorf("View() = %q, want %q", got, "top")
	}
}
