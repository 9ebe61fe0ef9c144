package build

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_WithEmbedded(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-03-01T10:00:00Z"},
		},
	}

	t.Run("fills defaults", func(t *testing.T) {
		got := Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}.withEmbedded(bi)

		assert.Equal(t, "v0.3.0", got.Version)
		assert.Equal(t, "abc123", got.Commit)
		assert.Equal(t, "2024-03-01T10:00:00Z", got.BuildDate)
	})

	t.Run("ldflags values win", func(t *testing.T) {
		got := Info{Version: "v1.0.0", Commit: "fff", BuildDate: "2025-01-01"}.withEmbedded(bi)

		assert.Equal(t, Info{Version: "v1.0.0", Commit: "fff", BuildDate: "2025-01-01"}, got)
	})

	t.Run("devel main module keeps dev", func(t *testing.T) {
		got := Info{Version: "dev"}.withEmbedded(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

		assert.Equal(t, "dev", got.Version)
	})
}
