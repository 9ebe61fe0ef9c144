package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
)

func TestTailLines(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	lines, err := tailLines(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, lines)

	lines, err = tailLines(strings.NewReader(input), 10)
	require.NoError(t, err)
	assert.Len(t, lines, 4)

	lines, err = tailLines(strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestColorizeLogLine_JSON(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	line := `{"level":"warn","time":"2026-10-15T10:04:05Z","component":"registry","rule":"act","message":"registry: save failed"}`

	out := colorizeLogLine(line, theme)

	assert.Contains(t, out, "10:04:05")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "registry: save failed")
	assert.Contains(t, out, "component=registry")
	assert.Contains(t, out, "rule=act")
	assert.NotContains(t, out, "error=")
}

func TestColorizeLogLine_Console(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	line := "10:04:05 ERR registry: save failed"

	assert.Contains(t, colorizeLogLine(line, theme), "registry: save failed")
}

func TestLogFollower_RotateDrainsOldFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kkc-shortcuts.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	file, err := os.Open(path)
	require.NoError(t, err)

	var got []string
	f := newLogFollower(file, path, func(line string) { got = append(got, line) })
	t.Cleanup(f.close)

	// Written after the last drain, then rotated away.
	old, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = old.WriteString("before rotation\nunterminated")
	require.NoError(t, err)
	require.NoError(t, old.Close())
	require.NoError(t, os.Rename(path, path+".1"))
	require.NoError(t, os.WriteFile(path, []byte("after rotation\n"), 0o644))

	require.NoError(t, f.rotate())
	require.NoError(t, f.drain())

	assert.Equal(t, []string{"before rotation", "unterminated", "after rotation"}, got)
}

func TestLogFollower_CloseReleasesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kkc-shortcuts.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	first, err := os.Open(path)
	require.NoError(t, err)

	f := newLogFollower(first, path, func(string) {})
	require.NoError(t, os.Rename(path, path+".1"))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	require.NoError(t, f.rotate())
	second := f.file

	f.close()

	require.ErrorIs(t, first.Close(), os.ErrClosed)
	require.ErrorIs(t, second.Close(), os.ErrClosed)
}

func TestLogFollower_HoldsPartialLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kkc-shortcuts.log")
	require.NoError(t, os.WriteFile(path, []byte("half"), 0o644))
	file, err := os.Open(path)
	require.NoError(t, err)

	var got []string
	f := newLogFollower(file, path, func(line string) { got = append(got, line) })
	t.Cleanup(f.close)

	require.NoError(t, f.drain())
	assert.Empty(t, got)

	w, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = w.WriteString(" done\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, f.drain())
	assert.Equal(t, []string{"half done"}, got)
}
