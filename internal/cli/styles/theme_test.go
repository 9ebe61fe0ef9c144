package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
)

func TestNewTheme_MergesPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette = config.ColorPalette{Accent: "#123456"}

	theme := NewTheme(cfg)

	defaults := config.DefaultPalette()
	assert.Equal(t, lipgloss.Color("#123456"), theme.Accent)
	assert.Equal(t, lipgloss.Color(defaults.Text), theme.Text)
	assert.Equal(t, lipgloss.Color(defaults.Border), theme.Border)
}

func TestNewTheme_NilConfigUsesDefaults(t *testing.T) {
	theme := NewTheme(nil)

	assert.Equal(t, lipgloss.Color(config.DefaultPalette().Accent), theme.Accent)
}

func TestTheme_ModeStyle(t *testing.T) {
	theme := NewTheme(nil)

	for _, mode := range entity.AllInputModes() {
		assert.Equal(t, modeColors[mode], theme.ModeStyle(mode).GetForeground(), mode.String())
	}
	assert.Equal(t, theme.Subtle.GetForeground(), theme.ModeStyle(entity.InputMode(42)).GetForeground())
}

func TestModeTabs_Wraps(t *testing.T) {
	tabs := NewModeTabs(NewTheme(nil), entity.InputMode(-1))
	require.Equal(t, entity.InputMode(0), tabs.Active)

	tabs.Prev()
	assert.Equal(t, entity.InputMode(entity.InputModeCount-1), tabs.Active)
	tabs.Next()
	assert.Equal(t, entity.InputMode(0), tabs.Active)

	view := tabs.View(true)
	for _, mode := range entity.AllInputModes() {
		assert.Contains(t, view, mode.DisplayName())
	}
}
