package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

// ShortcutsCLIRenderer renders non-interactive output for the rules,
// list, add, remove and use subcommands.
type ShortcutsCLIRenderer struct {
	theme *Theme
}

func NewShortcutsCLIRenderer(theme *Theme) *ShortcutsCLIRenderer {
	return &ShortcutsCLIRenderer{theme: theme}
}

// RenderRules lists rules, marking active.
func (r *ShortcutsCLIRenderer) RenderRules(rules []entity.RuleMetadata, active string) string {
	if len(rules) == 0 {
		return r.theme.Subtle.Render("No rules found. Check the rule roots with `kkc-shortcuts doctor`.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconRule), r.theme.Title.Render("Rules")))

	nameWidth := 0
	for _, rule := range rules {
		nameWidth = max(nameWidth, lipgloss.Width(rule.Name))
	}

	for _, rule := range rules {
		marker := r.theme.Subtle.Render(" ")
		name := r.theme.Normal.Width(nameWidth).Render(rule.Name)
		if rule.Name == active {
			marker = r.theme.Highlight.Render(IconActive)
			name = r.theme.Highlight.Width(nameWidth).Render(rule.Name)
		}
		line := fmt.Sprintf("%s %s  %s", marker, name, r.theme.Subtle.Render(rule.DisplayName()))
		if rule.Description != "" {
			line += "\n    " + r.theme.Subtle.Render(rule.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderShortcuts lists the bindings of rule in registry order.
func (r *ShortcutsCLIRenderer) RenderShortcuts(rule string, bindings []entity.Binding) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		r.theme.Highlight.Render(IconKeyboard),
		r.theme.Title.Render("Shortcuts"),
		r.theme.RuleBadge(rule),
	))

	if len(bindings) == 0 {
		b.WriteString(r.theme.Subtle.Render("No shortcuts defined."))
		return b.String()
	}

	modeWidth, keyWidth := 0, 0
	for _, bd := range bindings {
		modeWidth = max(modeWidth, lipgloss.Width(bd.Mode.DisplayName()))
		keyWidth = max(keyWidth, lipgloss.Width(bd.KeyString()))
	}

	for _, bd := range bindings {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			r.theme.ModeStyle(bd.Mode).Width(modeWidth).Render(bd.Mode.DisplayName()),
			r.theme.Highlight.Width(keyWidth).Render(bd.KeyString()),
			r.theme.Normal.Render(bd.Label),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCommands lists the command names and their labels.
func (r *ShortcutsCLIRenderer) RenderCommands(commands []string, label func(string) string) string {
	width := 0
	for _, c := range commands {
		width = max(width, lipgloss.Width(c))
	}

	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		lines = append(lines, fmt.Sprintf("%s  %s",
			r.theme.Highlight.Width(width).Render(c),
			r.theme.Subtle.Render(label(c)),
		))
	}
	return strings.Join(lines, "\n")
}

func (r *ShortcutsCLIRenderer) RenderAdded(b entity.Binding) string {
	return fmt.Sprintf("%s %s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.KeyCap.Render(b.KeyString()),
		r.theme.Normal.Render("now runs "+b.Label),
		r.theme.ModeStyle(b.Mode).Render("in "+b.Mode.DisplayName()),
	)
}

func (r *ShortcutsCLIRenderer) RenderRemoved(b entity.Binding) string {
	return fmt.Sprintf("%s Removed %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.KeyCap.Render(b.KeyString()),
		r.theme.Subtle.Render("("+b.Label+", "+b.Mode.DisplayName()+")"),
	)
}

func (r *ShortcutsCLIRenderer) RenderSaved(rule string) string {
	return fmt.Sprintf("%s Saved %s",
		r.theme.SuccessStyle.Render(IconSave),
		r.theme.Highlight.Render(rule),
	)
}

func (r *ShortcutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
