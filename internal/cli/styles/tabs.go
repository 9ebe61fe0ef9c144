package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

// ModeTabs is a horizontal picker over the input modes. It wraps around at
// both ends.
type ModeTabs struct {
	Active entity.InputMode
	theme  *Theme
}

// NewModeTabs creates a picker with mode selected. An invalid mode selects
// the first one.
func NewModeTabs(theme *Theme, mode entity.InputMode) ModeTabs {
	if !mode.Valid() {
		mode = 0
	}
	return ModeTabs{Active: mode, theme: theme}
}

func (m *ModeTabs) Next() {
	m.Active = entity.InputMode((int(m.Active) + 1) % entity.InputModeCount)
}

func (m *ModeTabs) Prev() {
	m.Active = entity.InputMode((int(m.Active) + entity.InputModeCount - 1) % entity.InputModeCount)
}

// View renders every mode. The selected one takes its mode color when the
// picker has focus and is drawn muted otherwise.
func (m ModeTabs) View(focused bool) string {
	tabs := make([]string, 0, entity.InputModeCount)
	for _, mode := range entity.AllInputModes() {
		style := m.theme.InactiveTab
		if mode == m.Active {
			style = m.theme.BadgeMuted.Padding(0, 2).Bold(true)
			if focused {
				style = m.theme.ActiveTab.Background(modeColors[mode])
			}
		}
		tabs = append(tabs, style.Render(mode.DisplayName()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
