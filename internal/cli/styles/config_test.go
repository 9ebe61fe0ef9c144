package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
)

func TestConfigRenderer_RenderOpening(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := r.RenderOpening("/tmp/kkc-shortcuts/config.toml", "vim")
	require.Contains(t, out, "Opening")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "vim")
}

func TestConfigRenderer_RenderPaths(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	out := r.RenderPaths([]styles.PathEntry{
		{Kind: styles.PathConfig, Label: "config", Path: "/home/u/.config/kkc-shortcuts/config.toml"},
		{Kind: styles.PathRule, Label: "active rule", Path: "/home/u/.config/kkc-shortcuts/rule"},
		{Kind: styles.PathDatabase, Label: "database", Path: "/home/u/.local/share/kkc-shortcuts/keymaps.sqlite"},
	})
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "active rule")
	require.Contains(t, out, styles.IconDatabase)
	require.Contains(t, out, styles.IconRule)

	require.Contains(t, r.RenderError(errors.New("bad palette")), "bad palette")
}
