package env

import (
	"fmt"
	"time"

	"roulette_bot/internal/config"

	"github.com/caarlos0/env/v11"
)

type httpEnv struct {
	Address     string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

type httpConfig struct {
	address     string
	readTimeout time.Duration
	idleTimeout time.Duration
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var e httpEnv
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("http config: %w", err)
	}

	return &httpConfig{
		address:     e.Address,
		readTimeout: e.ReadTimeout,
		idleTimeout: e.IdleTimeout,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}

func (cfg *httpConfig) ReadTimeout() time.Duration {
	return cfg.readTimeout
}

func (cfg *httpConfig) IdleTimeout() time.Duration {
	return cfg.idleTimeout
}
