package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewKeyInput creates the input a key description is typed into.
func NewKeyInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "C-j, (control j), Shift+Tab...")
	ti.Prompt = IconKeyboard + " "
	ti.CharLimit = 64
	return ti
}

// NewFilterInput creates the input that narrows the command list.
func NewFilterInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Filter commands...")
	ti.CharLimit = 64
	return ti
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
