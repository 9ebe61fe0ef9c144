package config

import (
	"os"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedManager(t *testing.T) *Manager {
	t.Helper()
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestManager_FileEvent_NotifiesSubscribers(t *testing.T) {
	mgr := newLoadedManager(t)
	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	path := mgr.GetConfigFile()
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"error\"\n"), 0o644))
	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.Len(t, got, 1)
	assert.Equal(t, "error", got[0].Logging.Level)
	assert.Equal(t, "error", mgr.Get().Logging.Level)
}

func TestManager_FileEvent_InvalidFileKeepsConfig(t *testing.T) {
	mgr := newLoadedManager(t)
	before := mgr.Get().Logging.Level
	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	path := mgr.GetConfigFile()
	require.NoError(t, os.WriteFile(path, []byte("[logging\nlevel = "), 0o644))
	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, before, mgr.Get().Logging.Level)
}

func TestManager_FileEvent_SkipsOwnSave(t *testing.T) {
	mgr := newLoadedManager(t)
	mgr.watching = true
	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	cfg := mgr.Get()
	cfg.Logging.Level = "warn"
	require.NoError(t, mgr.Save(cfg))
	mgr.handleFileEvent(fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})
	assert.False(t, called)

	mgr.handleFileEvent(fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})
	assert.True(t, called)
}
