// Package config loads the runtime settings of the payroll engine from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port                string        `env:"PORT" envDefault:"8080"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	DefaultTenantID     string        `env:"DEFAULT_TENANT_ID" envDefault:"local"`
	MaxRequestBodyBytes int           `env:"MAX_REQUEST_BODY_BYTES" envDefault:"1048576"`
	ReadTimeout         time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout        time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment into a Config, applying defaults for unset variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
