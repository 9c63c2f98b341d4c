// Package config loads server configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/sheet-api/internal/errors"
)

// ChainMode selects the chain client implementation.
type ChainMode string

// Chain modes
const (
	// ChainModeSimulated runs the in-process simulated contract stack
	ChainModeSimulated ChainMode = "simulated"
)

// Config holds the server configuration
type Config struct {
	// Port the HTTP server listens on
	Port int `env:"SHEET_API_PORT" envDefault:"8080"`

	// RedisAddr is the Redis endpoint for session storage. Empty runs the
	// server on the in-memory store.
	RedisAddr string `env:"SHEET_API_REDIS_ADDR"`

	// AllowedOrigins is the CORS allowlist for the browser frontend
	AllowedOrigins []string `env:"SHEET_API_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`

	// ChainMode selects the chain client implementation
	ChainMode ChainMode `env:"SHEET_API_CHAIN_MODE" envDefault:"simulated"`

	// ChainRollDelay is how long the simulated dice contract takes to
	// resolve a roll
	ChainRollDelay time.Duration `env:"SHEET_API_CHAIN_ROLL_DELAY" envDefault:"500ms"`

	// LocalRollDelay delays local roll resolution for frontend animation
	LocalRollDelay time.Duration `env:"SHEET_API_LOCAL_ROLL_DELAY" envDefault:"0"`

	// ConfirmTimeout bounds how long a remote roll may stay unconfirmed.
	// Zero waits forever.
	ConfirmTimeout time.Duration `env:"SHEET_API_CONFIRM_TIMEOUT" envDefault:"0"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parsed configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port < 1 || c.Port > 65535 {
		vb.Field("Port", "must be a valid TCP port")
	}
	if c.ChainMode != ChainModeSimulated {
		vb.InvalidField("ChainMode", "unknown chain mode")
	}
	if c.ChainRollDelay < 0 {
		vb.Field("ChainRollDelay", "must not be negative")
	}
	if c.LocalRollDelay < 0 {
		vb.Field("LocalRollDelay", "must not be negative")
	}
	if c.ConfirmTimeout < 0 {
		vb.Field("ConfirmTimeout", "must not be negative")
	}

	return vb.Build()
}
