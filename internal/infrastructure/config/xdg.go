package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appName        = "kkc-shortcuts"
	databaseName   = "keymaps.sqlite"
	activeRuleName = "rule"

	// libkkc keeps its rule trees under <data dir>/libkkc/rules.
	engineDataDir = "libkkc"
	rulesDir      = "rules"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for kkc-shortcuts:
// - $XDG_CONFIG_HOME/kkc-shortcuts (default: ~/.config/kkc-shortcuts)
// - $XDG_DATA_HOME/kkc-shortcuts (default: ~/.local/share/kkc-shortcuts)
// - $XDG_STATE_HOME/kkc-shortcuts (default: ~/.local/state/kkc-shortcuts)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: keep everything under .dev in the working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
		}, nil
	}

	configHome, err := xdgHome("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return nil, err
	}
	dataHome, err := xdgHome("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return nil, err
	}
	stateHome, err := xdgHome("XDG_STATE_HOME", ".local", "state")
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		DataHome:   filepath.Join(dataHome, appName),
		StateHome:  filepath.Join(stateHome, appName),
	}, nil
}

// xdgHome returns $env, or ~/<fallback...> when it is unset or relative.
func xdgHome(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); filepath.IsAbs(dir) {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...), nil
}

// GetConfigDir returns the XDG config directory for kkc-shortcuts.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for kkc-shortcuts.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the XDG state directory for kkc-shortcuts.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory. Logs are state, not data.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetDatabaseFile returns the path of the SQLite keymap store.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// GetActiveRuleFile returns the path of the one-line file naming the active rule.
func GetActiveRuleFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, activeRuleName), nil
}

// GetUserRuleDir returns the default base path user rules are written under.
func GetUserRuleDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, rulesDir), nil
}

// GetRuleSearchDirs returns the libkkc rule roots: $XDG_DATA_HOME first, then
// each entry of $XDG_DATA_DIRS (default /usr/local/share:/usr/share).
func GetRuleSearchDirs() ([]string, error) {
	dataHome, err := xdgHome("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return nil, err
	}
	roots := []string{filepath.Join(dataHome, engineDataDir, rulesDir)}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(dataDirs, string(os.PathListSeparator)) {
		if !filepath.IsAbs(dir) {
			continue
		}
		roots = append(roots, filepath.Join(dir, engineDataDir, rulesDir))
	}
	return roots, nil
}

// GetManDir returns the user man page directory for section 1,
// $XDG_DATA_HOME/man/man1.
func GetManDir() (string, error) {
	dataHome, err := xdgHome("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}

	return nil
}
