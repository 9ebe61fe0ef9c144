package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kkc-shortcuts/internal/application/usecase"
)

// DoctorRenderer renders the doctor report.
type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

func (r *DoctorRenderer) Render(report *usecase.DoctorOutput) string {
	header := r.renderHeader(report.OK)

	lines := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		lines = append(lines, r.renderCheck(c))
	}
	body := r.theme.Box.Render(
		r.theme.BoxHeader.Render(fmt.Sprintf("%s Shortcut editor", r.theme.Highlight.Render(IconKeyboard))) +
			"\n" + strings.Join(lines, "\n"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderCheck(c usecase.DoctorCheck) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	switch c.Status {
	case usecase.CheckWarn:
		icon, style = IconWarning, r.theme.WarningStyle
	case usecase.CheckFail:
		icon, style = IconX, r.theme.ErrorStyle
	}

	return fmt.Sprintf("%s %s %s",
		style.Render(icon),
		r.theme.Subtle.Width(12).Render(c.Name),
		r.theme.Normal.Render(c.Detail),
	)
}
