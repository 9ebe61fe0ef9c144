package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	domainvalidation "github.com/bnema/kkc-shortcuts/internal/domain/validation"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateEngine(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateEngine(config *Config) []string {
	var validationErrors []string

	switch config.Engine.Storage {
	case StorageJSON, StorageSQLite:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("engine.storage must be one of: json, sqlite (got %q)", config.Engine.Storage))
	}

	for i, p := range config.Engine.RulePaths {
		if !filepath.IsAbs(p) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("engine.rule_paths[%d] must be an absolute path (got %q)", i, p))
		}
	}

	if config.Engine.UserRuleDir != "" && !filepath.IsAbs(config.Engine.UserRuleDir) {
		validationErrors = append(validationErrors, "engine.user_rule_dir must be an absolute path")
	}

	// The prefix becomes part of a directory name: <prefix>:<parent>.
	if strings.ContainsAny(config.Engine.UserRulePrefix, `:/\`) {
		validationErrors = append(validationErrors, `engine.user_rule_prefix must not contain ':', '/' or '\'`)
	}

	return validationErrors
}

func validateDatabase(config *Config) []string {
	if config.Engine.Storage == StorageSQLite && config.Database.Path == "" {
		return []string{"database.path is required when engine.storage is sqlite"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	if config.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
			validationErrors = append(validationErrors,
				fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got %q)", config.Logging.Level))
		}
	}

	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got %q)", config.Logging.Format))
	}

	return validationErrors
}

func validateAppearance(config *Config) []string {
	return domainvalidation.ValidatePaletteHex("appearance.palette", config.Appearance.Palette.fields())
}
