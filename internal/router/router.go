// Package router owns screen navigation: the contract every screen
// implements and the stack the TUI moves through.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lucidbard/codequest/internal/ui/layout"
)

// Screen is one full-window view. The app shell draws the header and
// footer; View renders only the region between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHinter is implemented by screens that advertise key bindings in
// the footer.
type KeyHinter interface {
	KeyHints() []layout.KeyHint
}

// Navigation messages. Any screen can emit these from a command to
// move the stack.
type (
	// PushMsg opens To on top of the current screen.
	PushMsg struct{ To Screen }
	// PopMsg returns to the screen below.
	PopMsg struct{}
	// ReplaceMsg swaps the current screen for To without growing the stack.
	ReplaceMsg struct{ To Screen }
)

// Router dispatches messages to the active screen and applies
// navigation messages to the stack.
type Router struct {
	stack []Screen
}

func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Active returns the screen currently shown, or nil for an empty stack.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int { return len(r.stack) }

// Push opens s and runs its Init command.
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. The bottom screen never pops; quitting
// the app is the shell's decision, not the router's.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the active screen for s and runs its Init command.
func (r *Router) Replace(s Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Update applies navigation messages itself and forwards everything
// else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return r.Push(msg.To)
	case PopMsg:
		return r.Pop()
	case ReplaceMsg:
		return r.Replace(msg.To)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View renders the active screen's content region.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
