package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// EditorKeyMap defines keybindings for the shortcut table.
type EditorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Remove key.Binding
	Rule   key.Binding
	Save   key.Binding
	Revert key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Rule, k.Save, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Remove},
		{k.Rule, k.Save, k.Revert},
		{k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns the default editor keybindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "-", "delete"),
			key.WithHelp("d", "remove"),
		),
		Rule: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rule"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save"),
		),
		Revert: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "revert"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DialogKeyMap defines keybindings shared by the rule chooser and the add
// dialog.
type DialogKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Next     key.Binding
	Accept   key.Binding
	Cancel   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Accept, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevMode, k.NextMode, k.Next},
		{k.Accept, k.Cancel},
	}
}

// DefaultDialogKeyMap returns the default dialog keybindings.
func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("C-→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("C-←", "prev mode"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
