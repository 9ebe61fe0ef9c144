package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Minimum widths of the shortcut table columns.
const (
	modeColumnWidth  = 12
	keyColumnWidth   = 18
	labelColumnWidth = 30
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// ShortcutTableColumns returns the Input Mode, Shortcut and Command
// columns. The command column takes the width left over.
func ShortcutTableColumns(width int) []table.Column {
	label := width - modeColumnWidth - keyColumnWidth - 6
	if label < labelColumnWidth {
		label = labelColumnWidth
	}
	return []table.Column{
		{Title: "Input Mode", Width: modeColumnWidth},
		{Title: "Shortcut", Width: keyColumnWidth},
		{Title: "Command", Width: label},
	}
}
