package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// PathKind picks the icon shown next to a path.
type PathKind int

const (
	PathDir PathKind = iota
	PathConfig
	PathRule
	PathLog
	PathDatabase
)

var pathIcons = [...]string{
	PathDir:      IconFolder,
	PathConfig:   IconConfig,
	PathRule:     IconRule,
	PathLog:      IconLogs,
	PathDatabase: IconDatabase,
}

// PathEntry is one row of `config path`.
type PathEntry struct {
	Kind  PathKind
	Label string
	Path  string
}

// RenderPaths renders the files and directories the editor uses, one per
// line, labels aligned.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelWidth := 0
	for _, e := range entries {
		labelWidth = max(labelWidth, lipgloss.Width(e.Label))
	}
	labelStyle := r.theme.Subtle.Width(labelWidth + 2)

	var b strings.Builder
	b.WriteString("\n")
	for _, e := range entries {
		icon := IconFolder
		if int(e.Kind) < len(pathIcons) {
			icon = pathIcons[e.Kind]
		}
		fmt.Fprintf(&b, "  %s %s%s\n",
			iconStyle.Render(icon),
			labelStyle.Render(e.Label),
			r.theme.Normal.Render(e.Path),
		)
	}
	return b.String()
}

// RenderValid renders the "config is valid" message.
func (r *ConfigRenderer) RenderValid(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is valid\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderOpening renders the message shown before handing the file to an
// editor.
func (r *ConfigRenderer) RenderOpening(path, editor string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Opening %s with %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Highlight.Render(editor),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
