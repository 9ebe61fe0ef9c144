package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestWithRule_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)
	ctx := WithRule(WithContext(context.Background(), logger), "act")

	FromContext(ctx).Info().Msg("registry: rule loaded")

	assert.Contains(t, buf.String(), `"rule":"act"`)
	assert.Contains(t, buf.String(), `"message":"registry: rule loaded"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kkc-shortcuts.log")

	logger, cleanup, err := NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json"}, path)
	require.NoError(t, err)
	logger.Info().Str("rule", "default").Msg("tui: started")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tui: started")
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")
	r, err := NewLogRotator(path, 1, 2, false)
	require.NoError(t, err)
	r.maxSize = 16

	for range 5 {
		_, err := r.Write([]byte(strings.Repeat("x", 12)))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 2, backups)
	assert.FileExists(t, path)
}
