package jwt

import (
	"fmt"

	"github.com/dmitrymomot/jwtkit/pkg/config"
	"github.com/dmitrymomot/jwtkit/pkg/environment"
)

// Config is the environment-driven configuration of a Service.
type Config struct {
	Secret      string `env:"JWT_SECRET,required,notEmpty"`
	Environment string `env:"APP_ENV" envDefault:"development"`
}

// NewFromConfig creates a Service from cfg. Options are applied after the
// environment taken from cfg, so they may override it.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	opts = append([]Option{WithEnvironment(environment.Parse(cfg.Environment))}, opts...)
	return NewFromString(cfg.Secret, opts...)
}

// NewFromEnv loads Config from the process environment (and an optional .env
// file) and creates a Service. A missing JWT_SECRET is a configuration error;
// there is no built-in fallback.
func NewFromEnv(opts ...Option) (*Service, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("jwt: load config: %w", err)
	}
	return NewFromConfig(cfg, opts...)
}
