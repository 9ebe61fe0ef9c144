package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/bnema/kkc-shortcuts/internal/application/usecase"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

const commandListHeight = 8

type addField int

const (
	fieldMode addField = iota
	fieldKey
	fieldCommand
	fieldCount
)

// commandSource feeds "<name> <label>" to the fuzzy matcher so both the
// command name and its label can be searched.
type commandSource struct {
	names  []string
	labels []string
}

func (s commandSource) String(i int) string { return s.names[i] + " " + s.labels[i] }
func (s commandSource) Len() int            { return len(s.names) }

// addDialog collects the three parts of a new shortcut.
type addDialog struct {
	keys    styles.DialogKeyMap
	modes   styles.ModeTabs
	keyIn   textinput.Model
	filter  textinput.Model
	focus   addField
	source  commandSource
	matches []int // indexes into source, best first
	cursor  int
	err     error
	theme   *styles.Theme
}

// addSubmitMsg carries a completed dialog to the editor.
type addSubmitMsg struct {
	input usecase.AddShortcutInput
}

// addCanceledMsg closes the dialog without changes.
type addCanceledMsg struct{}

func newAddDialog(theme *styles.Theme, mode entity.InputMode, commands []string, label func(string) string) addDialog {
	source := commandSource{names: commands, labels: make([]string, len(commands))}
	for i, c := range commands {
		source.labels[i] = label(c)
	}

	d := addDialog{
		keys:   styles.DefaultDialogKeyMap(),
		modes:  styles.NewModeTabs(theme, mode),
		keyIn:  styles.NewKeyInput(theme),
		filter: styles.NewFilterInput(theme),
		source: source,
		theme:  theme,
	}
	d.refilter()
	return d.focusField(fieldKey)
}

func (d addDialog) focusField(f addField) addDialog {
	d.focus = f
	d.keyIn.Blur()
	d.filter.Blur()
	switch f {
	case fieldKey:
		d.keyIn.Focus()
	case fieldCommand:
		d.filter.Focus()
	}
	return d
}

func (d *addDialog) refilter() {
	pattern := strings.TrimSpace(d.filter.Value())
	d.matches = d.matches[:0]
	if pattern == "" {
		for i := range d.source.Len() {
			d.matches = append(d.matches, i)
		}
	} else {
		for _, m := range fuzzy.FindFrom(pattern, d.source) {
			d.matches = append(d.matches, m.Index)
		}
	}
	if d.cursor >= len(d.matches) {
		d.cursor = max(0, len(d.matches)-1)
	}
}

func (d addDialog) mode() entity.InputMode {
	return d.modes.Active
}

// selectedCommand returns the highlighted command, or "" when the filter
// matches nothing.
func (d addDialog) selectedCommand() string {
	if d.cursor < 0 || d.cursor >= len(d.matches) {
		return ""
	}
	return d.source.names[d.matches[d.cursor]]
}

func (d addDialog) Update(msg tea.Msg) (addDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch {
	case key.Matches(keyMsg, d.keys.Cancel):
		return d, func() tea.Msg { return addCanceledMsg{} }
	case key.Matches(keyMsg, d.keys.Next):
		return d.focusField((d.focus + 1) % fieldCount), nil
	case key.Matches(keyMsg, d.keys.NextMode):
		d.modes.Next()
		return d, nil
	case key.Matches(keyMsg, d.keys.PrevMode):
		d.modes.Prev()
		return d, nil
	case key.Matches(keyMsg, d.keys.Accept):
		input := usecase.AddShortcutInput{
			Mode:    d.mode(),
			Key:     d.keyIn.Value(),
			Command: d.selectedCommand(),
		}
		return d, func() tea.Msg { return addSubmitMsg{input: input} }
	}

	var cmd tea.Cmd
	switch d.focus {
	case fieldMode:
		switch keyMsg.String() {
		case "left", "h":
			d.modes.Prev()
		case "right", "l":
			d.modes.Next()
		}
	case fieldKey:
		d.keyIn, cmd = d.keyIn.Update(msg)
	case fieldCommand:
		switch {
		case key.Matches(keyMsg, d.keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(keyMsg, d.keys.Down):
			if d.cursor < len(d.matches)-1 {
				d.cursor++
			}
		default:
			d.filter, cmd = d.filter.Update(msg)
			d.refilter()
		}
	}
	return d, cmd
}

func (d addDialog) View() string {
	t := d.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Add shortcut"))
	b.WriteString("\n\n")

	b.WriteString(t.Subtitle.Render("Input mode"))
	b.WriteString("\n")
	b.WriteString(d.modes.View(d.focus == fieldMode))
	b.WriteString("\n\n")

	b.WriteString(t.Subtitle.Render("Shortcut"))
	b.WriteString("\n")
	b.WriteString(t.InputBox(d.keyIn.View(), d.focus == fieldKey))
	b.WriteString("\n\n")

	b.WriteString(t.Subtitle.Render("Command"))
	b.WriteString("\n")
	b.WriteString(t.InputBox(d.filter.View(), d.focus == fieldCommand))
	b.WriteString("\n")
	b.WriteString(d.renderCommands())

	if d.err != nil {
		b.WriteString("\n")
		b.WriteString(t.ErrorStyle.Render(styles.IconX + " " + d.err.Error()))
	}

	return t.Box.Render(b.String())
}

func (d addDialog) renderCommands() string {
	t := d.theme
	if len(d.matches) == 0 {
		return t.Subtle.Render("  no matching command")
	}

	start := 0
	if d.cursor >= commandListHeight {
		start = d.cursor - commandListHeight + 1
	}
	end := min(start+commandListHeight, len(d.matches))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		idx := d.matches[i]
		text := d.source.labels[idx] + "  " + t.Subtle.Render(d.source.names[idx])
		if i == d.cursor {
			lines = append(lines, t.ListItemSelected.Render(styles.IconCursor+" "+text))
			continue
		}
		lines = append(lines, t.ListItem.Render("  "+text))
	}
	return strings.Join(lines, "\n")
}
