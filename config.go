package esid

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/esid/pkg/config"
	"github.com/dmitrymomot/esid/pkg/logger"
)

// Config holds Checker settings. LoadConfig reads them from the environment.
type Config struct {
	// NormalizeInput strips spaces, hyphens and dots and uppercases values
	// before validation.
	NormalizeInput bool `env:"ESID_NORMALIZE_INPUT" envDefault:"false"`

	// DefaultLanguage is used for messages when no requested language matches.
	DefaultLanguage string `env:"ESID_DEFAULT_LANGUAGE" envDefault:"en"`

	LogLevel    string `env:"ESID_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"ESID_LOG_FORMAT" envDefault:"json"`
	Environment string `env:"ESID_ENV" envDefault:"development"`
}

// DefaultConfig returns the values LoadConfig uses when nothing is set.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage: "en",
		LogLevel:        "info",
		LogFormat:       "json",
		Environment:     "development",
	}
}

// LoadConfig parses Config from the environment and the optional .env file.
// The result is cached for the process lifetime.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the logger described by cfg.
func (cfg Config) NewLogger() (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return logger.New(
		logger.WithEnvironment(cfg.Environment, "esid"),
		logger.WithLevel(level),
		logger.WithFormat(format),
	), nil
}
