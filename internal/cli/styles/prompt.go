package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptChoice is one button of a PromptModel. Key selects and confirms it
// in one stroke.
type PromptChoice struct {
	Label string
	Key   string
}

// PromptModel is a modal dialog with a row of buttons.
type PromptModel struct {
	Message  string
	Detail   string
	Choices  []PromptChoice
	Selected int

	Confirmed bool // User pressed enter or a choice key
	Canceled  bool // User pressed escape

	theme *Theme
}

// PromptKeyMap defines keybindings for the prompt dialog.
type PromptKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultPromptKeyMap returns the default keybindings.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "previous")),
		Right:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// NewPrompt creates a dialog with the given choices, the first one
// selected.
func NewPrompt(theme *Theme, message string, choices ...PromptChoice) PromptModel {
	return PromptModel{
		Message: message,
		Choices: choices,
		theme:   theme,
	}
}

// NewConfirm creates a yes/no dialog defaulting to "No". Result reports
// whether "Yes" was chosen.
func NewConfirm(theme *Theme, message string) PromptModel {
	return NewPrompt(theme, message,
		PromptChoice{Label: "No", Key: "n"},
		PromptChoice{Label: "Yes", Key: "y"},
	)
}

// Init implements tea.Model.
func (PromptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (PromptModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Choices) == 0 {
		return m, nil
	}
	keys := DefaultPromptKeyMap()

	for i, c := range m.Choices {
		if c.Key != "" && keyMsg.String() == c.Key {
			m.Selected = i
			m.Confirmed = true
			return m, nil
		}
	}

	switch {
	case key.Matches(keyMsg, keys.Left):
		m.Selected = (m.Selected - 1 + len(m.Choices)) % len(m.Choices)
	case key.Matches(keyMsg, keys.Right):
		m.Selected = (m.Selected + 1) % len(m.Choices)
	case key.Matches(keyMsg, keys.Confirm):
		m.Confirmed = true
	case key.Matches(keyMsg, keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View implements tea.Model.
func (m PromptModel) View() string {
	t := m.theme

	buttons := make([]string, 0, len(m.Choices)*2)
	hints := make([]string, 0, len(m.Choices))
	for i, c := range m.Choices {
		style := t.InactiveTab
		if i == m.Selected {
			style = t.ActiveTab
		}
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, style.Render(" "+c.Label+" "))
		if c.Key != "" {
			hints = append(hints, c.Key+" "+strings.ToLower(c.Label))
		}
	}

	lines := []string{t.Title.Render(m.Message)}
	if m.Detail != "" {
		lines = append(lines, t.Subtle.Render(m.Detail))
	}
	hints = append(hints, "←/→ to select", "enter to confirm", "esc to cancel")
	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
		"",
		t.Subtle.Render(strings.Join(hints, " • ")),
	)

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Done returns true if the dialog is complete.
func (m PromptModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Choice returns the confirmed choice index, or -1 when the dialog was
// canceled or is still open.
func (m PromptModel) Choice() int {
	if !m.Confirmed || m.Canceled {
		return -1
	}
	return m.Selected
}

// Result returns true if the user confirmed the last choice, which is
// "Yes" for NewConfirm.
func (m PromptModel) Result() bool {
	return len(m.Choices) > 0 && m.Choice() == len(m.Choices)-1
}
