// Package config defines wellquiz configuration and how it is layered.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/wellquiz/internal/quiz"
)

// Sentinel error kinds for this package.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Config contains process configuration.
type Config struct {
	// GameDuration is the countdown length in seconds.
	GameDuration int `koanf:"game_duration"`

	// ResultsShown is how many interventions the results view lists.
	ResultsShown int `koanf:"results_shown"`

	// Catalog is an optional JSON or YAML catalog file. Empty uses the
	// built-in catalog.
	Catalog string `koanf:"catalog"`

	// LogFile receives structured logs. Empty discards them, since the
	// terminal UI owns stdout.
	LogFile string `koanf:"log_file"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr, when set, serves Prometheus metrics, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// Seed fixes pair selection. Zero seeds from the clock.
	Seed uint64 `koanf:"seed"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		GameDuration: quiz.DefaultDuration,
		ResultsShown: 4,
		LogLevel:     "info",
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	var errs []string
	if c.GameDuration <= 0 {
		errs = append(errs, fmt.Sprintf("game_duration must be > 0, got %d", c.GameDuration))
	}
	if c.ResultsShown <= 0 {
		errs = append(errs, fmt.Sprintf("results_shown must be > 0, got %d", c.ResultsShown))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
// Accepts: debug, info, warn/warning, error (case-insensitive).
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
