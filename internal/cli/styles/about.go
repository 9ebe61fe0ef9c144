package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kkc-shortcuts/internal/domain/build"
)

// logo is a key cap with the kana the tool binds keys for.
const logo = `╭──────╮
│ かな │
╰──────╯`

// AboutRenderer renders the version command output.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render puts the logo left of the build info.
func (r *AboutRenderer) Render(info build.Info) string {
	art := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		Margin(1, 0, 0, 2).
		Render(logo)
	return lipgloss.JoinHorizontal(lipgloss.Top, art, "   ", r.renderInfo(info))
}

func (r *AboutRenderer) renderInfo(info build.Info) string {
	rows := []struct{ icon, label, value string }{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	label := r.theme.Subtle.Width(8)

	lines := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		lines = append(lines, icon.Render(row.icon)+" "+label.Render(row.label)+r.theme.Highlight.Render(row.value))
	}
	lines = append(lines,
		"",
		icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()),
		icon.Render(IconHeart)+" "+r.theme.Subtle.Render("by ")+
			r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	)
	return strings.Join(lines, "\n")
}
