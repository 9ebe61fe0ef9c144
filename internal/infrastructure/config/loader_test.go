package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG variable at a fresh temp tree.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "json", mgr.viper.GetString("engine.storage"))
	assert.Equal(t, "kkc-shortcuts", mgr.viper.GetString("engine.user_rule_prefix"))
	assert.Equal(t, "#4ade80", mgr.viper.GetString("appearance.palette.accent"))
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", "kkc-shortcuts", "config.toml")
	assert.FileExists(t, configFile)

	cfg := mgr.Get()
	assert.Equal(t, StorageJSON, cfg.Engine.Storage)
	assert.Equal(t, filepath.Join(root, "data", "kkc-shortcuts", "keymaps.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "data", "kkc-shortcuts", "rules"), cfg.Engine.UserRuleDir)
	assert.Equal(t, DefaultPalette(), cfg.Appearance.Palette)
}

func TestManager_Load_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "kkc-shortcuts")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[engine]
rule_paths = ["/srv/rules", " /srv/rules "]
storage = "SQLite"

[logging]
level = "debug"
`), filePerm))
	t.Setenv("KKC_SHORTCUTS_LOG_FORMAT", "json")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, StorageSQLite, cfg.Engine.Storage)
	assert.Equal(t, []string{"/srv/rules"}, cfg.Engine.RulePaths)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestManager_Load_RejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "kkc-shortcuts")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[engine]
rule_paths = ["relative/rules"]

[appearance.palette]
accent = "green"
`), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine.rule_paths[0]")
	assert.Contains(t, err.Error(), "appearance.palette.accent")
}

func TestManager_Save_RoundTrip(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Engine.Storage = StorageSQLite
	cfg.Logging.Level = "warn"
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	assert.Equal(t, StorageSQLite, reloaded.Get().Engine.Storage)
	assert.Equal(t, "warn", reloaded.Get().Logging.Level)
}

func TestManager_Save_Nil(t *testing.T) {
	mgr := &Manager{viper: viper.New()}

	assert.Error(t, mgr.Save(nil))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Storage = "postgres"
	cfg.Engine.UserRulePrefix = "  "
	cfg.Logging.Format = "TEXT"

	normalizeConfig(cfg)

	assert.Equal(t, StorageJSON, cfg.Engine.Storage)
	assert.Equal(t, "kkc-shortcuts", cfg.Engine.UserRulePrefix)
	assert.Equal(t, "console", cfg.Logging.Format)
}
