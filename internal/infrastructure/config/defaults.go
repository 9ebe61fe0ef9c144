package config

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultUserRulePrefix = "kkc-shortcuts"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// DefaultPalette returns the dark palette the TUI ships with.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// DefaultConfig returns the default configuration values. Paths that depend
// on the environment are filled in by Load.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			RulePaths:      []string{},
			UserRulePrefix: defaultUserRulePrefix,
			Storage:        StorageJSON,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}
