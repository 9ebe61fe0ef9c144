// Package config loads, validates and watches the kkc-shortcuts configuration.
package config

// Config represents the complete configuration for kkc-shortcuts.
type Config struct {
	Engine     EngineConfig     `mapstructure:"engine" yaml:"engine" toml:"engine" json:"engine"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// StorageBackend selects where user keymap overrides are written.
type StorageBackend string

const (
	// StorageJSON writes libkkc-compatible rule directories.
	StorageJSON StorageBackend = "json"
	// StorageSQLite keeps overrides in the keymap database.
	StorageSQLite StorageBackend = "sqlite"
)

// EngineConfig controls rule discovery and where user rules live.
type EngineConfig struct {
	// RulePaths are extra rule roots searched before the system ones.
	RulePaths []string `mapstructure:"rule_paths" yaml:"rule_paths" toml:"rule_paths" json:"rule_paths" jsonschema:"description=Extra libkkc rule roots searched first"`
	// UserRuleDir is the base path user rules are written under.
	UserRuleDir string `mapstructure:"user_rule_dir" yaml:"user_rule_dir" toml:"user_rule_dir" json:"user_rule_dir"`
	// UserRulePrefix names user rule directories as <prefix>:<parent>.
	UserRulePrefix string         `mapstructure:"user_rule_prefix" yaml:"user_rule_prefix" toml:"user_rule_prefix" json:"user_rule_prefix"`
	Storage        StorageBackend `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage" jsonschema:"enum=json,enum=sqlite"`
}

// DatabaseConfig locates the SQLite store used when engine.storage is sqlite.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File sends logs to the state log directory instead of stderr.
	File bool `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
}

// AppearanceConfig holds the terminal UI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds the theme colors as #RRGGBB strings.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

func (p ColorPalette) fields() map[string]string {
	return map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"border":          p.Border,
	}
}
