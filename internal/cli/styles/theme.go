// Package styles holds the lipgloss theme and the small bubbles components
// shared by the shortcut editor and the plain CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
)

// Fixed colors. Status colors stay readable on any palette and every input
// mode keeps its hue so a mode is recognizable across the table and tabs.
var (
	errorColor   = lipgloss.Color("#ef4444")
	warningColor = lipgloss.Color("#f59e0b")

	modeColors = [entity.InputModeCount]lipgloss.Color{
		entity.InputModeHiragana:        "#f472b6",
		entity.InputModeKatakana:        "#a78bfa",
		entity.InputModeHankakuKatakana: "#818cf8",
		entity.InputModeLatin:           "#38bdf8",
		entity.InputModeWideLatin:       "#2dd4bf",
		entity.InputModeDirect:          "#a3a3a3",
	}
)

// Theme holds the palette colors and the styles built from them.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Success        lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// ActiveTab and InactiveTab also draw the prompt buttons.
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// KeyCap draws a key description such as "(control g)".
	KeyCap lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style

	modes [entity.InputModeCount]lipgloss.Style
}

// NewTheme creates a Theme from the configured palette. Empty colors fall
// back to the default palette one by one.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultPalette()
	if cfg != nil {
		p = mergePalette(p, cfg.Appearance.Palette)
	}
	return NewThemeFromPalette(p)
}

func mergePalette(base, over config.ColorPalette) config.ColorPalette {
	for _, f := range []struct{ dst, src *string }{
		{&base.Background, &over.Background},
		{&base.Surface, &over.Surface},
		{&base.SurfaceVariant, &over.SurfaceVariant},
		{&base.Text, &over.Text},
		{&base.Muted, &over.Muted},
		{&base.Accent, &over.Accent},
		{&base.Border, &over.Border},
	} {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
	return base
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          errorColor,
		Success:        lipgloss.Color(p.Accent),
	}
	t.buildStyles()
	return t
}

// ModeStyle returns the style of an input mode label. Unknown modes get
// the muted text style.
func (t *Theme) ModeStyle(mode entity.InputMode) lipgloss.Style {
	if !mode.Valid() {
		return t.Subtle
	}
	return t.modes[mode]
}

func (t *Theme) buildStyles() {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	rounded := func(border lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border)
	}

	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(warningColor)
	t.SuccessStyle = fg(t.Success)

	t.ActiveTab = fg(t.Background).Background(t.Accent).Padding(0, 2).Bold(true)
	t.InactiveTab = fg(t.Muted).Background(t.Surface).Padding(0, 2)

	t.ListItem = fg(t.Text).PaddingLeft(2)
	t.ListItemSelected = fg(t.Accent).Background(t.SurfaceVariant).PaddingLeft(2).Bold(true)

	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(t.SurfaceVariant).Padding(0, 1)

	t.Input = rounded(t.Border).Foreground(t.Text).Background(t.Surface).Padding(0, 1)
	t.InputFocused = rounded(t.Accent).Foreground(t.Text).Background(t.Surface).Padding(0, 1)

	t.KeyCap = fg(t.Accent).Background(t.Surface).Padding(0, 1)

	t.Box = rounded(t.Border).Padding(1, 2)
	t.BoxHeader = t.Title.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	for i, c := range modeColors {
		t.modes[i] = fg(c)
	}
}
