package env

import (
	"fmt"
	"time"

	"roulette_bot/internal/config"

	"github.com/caarlos0/env/v11"
)

type sessionEnv struct {
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	JanitorInterval time.Duration `env:"SESSION_JANITOR_INTERVAL" envDefault:"1m"`
}

type sessionConfig struct {
	ttl             time.Duration
	janitorInterval time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	var e sessionEnv
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	if e.TTL <= 0 || e.JanitorInterval <= 0 {
		return nil, fmt.Errorf("session ttl and janitor interval must be positive")
	}

	return &sessionConfig{
		ttl:             e.TTL,
		janitorInterval: e.JanitorInterval,
	}, nil
}

func (cfg *sessionConfig) TTL() time.Duration {
	return cfg.ttl
}

func (cfg *sessionConfig) JanitorInterval() time.Duration {
	return cfg.janitorInterval
}
