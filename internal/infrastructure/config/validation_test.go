package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown storage",
			mutate:  func(c *Config) { c.Engine.Storage = "redis" },
			wantErr: "engine.storage",
		},
		{
			name:    "prefix with separator",
			mutate:  func(c *Config) { c.Engine.UserRulePrefix = "mine:rule" },
			wantErr: "engine.user_rule_prefix",
		},
		{
			name: "sqlite without database path",
			mutate: func(c *Config) {
				c.Engine.Storage = StorageSQLite
				c.Database.Path = ""
			},
			wantErr: "database.path",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "bad palette color",
			mutate:  func(c *Config) { c.Appearance.Palette.Border = "#12345" },
			wantErr: "appearance.palette.border",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Storage = "redis"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine.storage")
	assert.Contains(t, err.Error(), "logging.format")
}
