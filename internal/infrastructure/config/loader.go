package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/kkc-shortcuts/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	logger         zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// KKC_SHORTCUTS_ENGINE_STORAGE, KKC_SHORTCUTS_DATABASE_PATH, ...
	v.SetEnvPrefix("KKC_SHORTCUTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "KKC_SHORTCUTS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind KKC_SHORTCUTS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KKC_SHORTCUTS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KKC_SHORTCUTS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		logger:    logging.NewFromEnv(),
	}, nil
}

// SetLogger replaces the logger used for reload events. The editor points
// it at its log file so reloads never write over the screen.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.apply()
}

// apply unmarshals viper's state into a fresh Config and swaps it in.
// Must be called with m.mu held for write.
func (m *Manager) apply() error {
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// ensurePaths fills the environment-dependent defaults left empty by the file.
func ensurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Engine.UserRuleDir == "" {
		dir, err := GetUserRuleDir()
		if err != nil {
			return fmt.Errorf("failed to get user rule directory: %w", err)
		}
		config.Engine.UserRuleDir = dir
	}
	return nil
}

func normalizeConfig(config *Config) {
	switch StorageBackend(strings.ToLower(string(config.Engine.Storage))) {
	case StorageSQLite:
		config.Engine.Storage = StorageSQLite
	default:
		config.Engine.Storage = StorageJSON
	}

	config.Engine.UserRulePrefix = strings.TrimSpace(config.Engine.UserRulePrefix)
	if config.Engine.UserRulePrefix == "" {
		config.Engine.UserRulePrefix = defaultUserRulePrefix
	}

	paths := config.Engine.RulePaths[:0]
	for _, p := range config.Engine.RulePaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, filepath.Clean(p))
		}
	}
	config.Engine.RulePaths = slices.Compact(paths)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Engine.RulePaths = slices.Clone(m.config.Engine.RulePaths)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.viper.Set("engine.rule_paths", cfg.Engine.RulePaths)
	m.viper.Set("engine.user_rule_dir", cfg.Engine.UserRuleDir)
	m.viper.Set("engine.user_rule_prefix", cfg.Engine.UserRulePrefix)
	m.viper.Set("engine.storage", string(cfg.Engine.Storage))
	m.viper.Set("database.path", cfg.Database.Path)
	m.viper.Set("logging.level", cfg.Logging.Level)
	m.viper.Set("logging.format", cfg.Logging.Format)
	m.viper.Set("logging.file", cfg.Logging.File)
	for name, value := range cfg.Appearance.Palette.fields() {
		m.viper.Set("appearance.palette."+name, value)
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := m.viper.WriteConfig(); err != nil {
		m.skipNextReload = false
		return fmt.Errorf("failed to write config: %w", err)
	}

	saved := *cfg
	saved.Engine.RulePaths = slices.Clone(cfg.Engine.RulePaths)
	m.config = &saved
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults as a TOML file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path and Engine.UserRuleDir are derived in ensurePaths.
	m.viper.SetDefault("engine.rule_paths", defaults.Engine.RulePaths)
	m.viper.SetDefault("engine.user_rule_dir", "")
	m.viper.SetDefault("engine.user_rule_prefix", defaults.Engine.UserRulePrefix)
	m.viper.SetDefault("engine.storage", string(defaults.Engine.Storage))
	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	for name, value := range defaults.Appearance.Palette.fields() {
		m.viper.SetDefault("appearance.palette."+name, value)
	}
}
