package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// CodeEditor wraps bubbles/textarea for editing a single code cell.
type CodeEditor struct {
	Model textarea.Model
}

// NewCodeEditor creates a new code editor.
func NewCodeEditor(placeholder string) CodeEditor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.SetHeight(8)
	return CodeEditor{Model: ta}
}

// Init returns the initial command.
func (e CodeEditor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (e CodeEditor) Update(msg tea.Msg) (CodeEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e CodeEditor) View() string {
	return e.Model.View()
}

// Value returns the current cell source.
func (e CodeEditor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the cell source and moves the cursor to the end.
func (e *CodeEditor) SetValue(source string) {
	e.Model.SetValue(source)
	e.Model.CursorEnd()
}

// SetSize resizes the editor.
func (e *CodeEditor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Focus gives the editor keyboard focus.
func (e *CodeEditor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes keyboard focus.
func (e *CodeEditor) Blur() {
	e.Model.Blur()
}

// Focused reports whether the editor has focus.
func (e CodeEditor) Focused() bool {
	return e.Model.Focused()
}

// Reset clears the editor.
func (e *CodeEditor) Reset() {
	e.Model.Reset()
}
