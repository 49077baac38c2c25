package env

import (
	"fmt"

	"roulette_bot/internal/config"

	"github.com/caarlos0/env/v11"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type logEnv struct {
	Env   string `env:"ENV" envDefault:"local"`
	Level string `env:"LOG_LEVEL"`
}

type logConfig struct {
	env   string
	level string
}

func NewLogConfig() (config.LogConfig, error) {
	var e logEnv
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("log config: %w", err)
	}

	switch e.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("unknown env %q", e.Env)
	}

	return &logConfig{env: e.Env, level: e.Level}, nil
}

func (cfg *logConfig) Env() string {
	return cfg.env
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
