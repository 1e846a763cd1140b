// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct-tag based parsing:
//
//   - LoadEnv / MustLoadEnv read one or more .env files into the environment.
//   - Load / MustLoad parse into a struct and cache the result per type.
//   - ForceReload and ResetCache drop cached values, mostly for tests.
//   - Parse builds an uncached value with a variable name prefix.
//
// # Usage
//
//	type Config struct {
//		NormalizeInput bool   `env:"NORMALIZE_INPUT" envDefault:"false"`
//		Language       string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
//	}
//
//	cfg, err := config.Parse[Config]("ESID_")
//
// # Error Handling
//
// Failures wrap ErrParsingConfig or ErrLoadingEnvFile, so callers can use
// errors.Is. Must* variants panic and are meant for program start-up.
//
// All functions are safe for concurrent use.
package config
