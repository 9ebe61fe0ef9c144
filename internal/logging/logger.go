package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "KKC_SHORTCUTS_LOG_LEVEL"
	envLogFormat = "KKC_SHORTCUTS_LOG_FORMAT"

	logDirPerm  = 0o755
	logFilePerm = 0o600
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to out with the given configuration.
func NewWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	var output = out

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// Size limits of the TUI log file.
const (
	fileMaxSizeMB  = 5
	fileMaxBackups = 3
)

// NewWithFile creates a logger writing to a rotated file at path. The
// returned cleanup closes the file. The terminal UI uses this so log lines
// never land on the alternate screen.
func NewWithFile(cfg Config, path string) (zerolog.Logger, func(), error) {
	rotator, err := NewLogRotator(path, fileMaxSizeMB, fileMaxBackups, true)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	cleanup := func() { _ = rotator.Close() }
	return NewWithWriter(cfg, rotator), cleanup, nil
}

// ParseLevel converts a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// KKC_SHORTCUTS_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// KKC_SHORTCUTS_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	level := os.Getenv(envLogLevel)
	if level == "" {
		level = "info"
	}
	return NewFromConfigValues(level, os.Getenv(envLogFormat))
}
