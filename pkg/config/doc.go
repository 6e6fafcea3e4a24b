// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory is loaded automatically on
//     first use of Load).
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per struct type for the lifetime of the process.
//   - MustLoad panics on failure for configuration the process cannot start
//     without.
//   - Reload and ResetCache drop cached values, mostly for tests.
//
// # Usage
//
//	type TokenConfig struct {
//	    Secret string `env:"JWT_SECRET,required"`
//	    Env    string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg TokenConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of ErrParsingConfig, ErrInvalidConfigType,
// ErrLoadingEnvFile or ErrNilPointer and can be compared with errors.Is.
package config
