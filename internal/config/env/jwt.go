package env

import (
	"fmt"
	"time"

	"roulette_bot/internal/config"

	"github.com/caarlos0/env/v11"
)

type jwtEnv struct {
	AccessToken         string        `env:"ACCESS_TOKEN,required,notEmpty"`
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"24h"`
}

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	var e jwtEnv
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("access token config: %w", err)
	}

	if e.AccessTokenDuration <= 0 {
		return nil, fmt.Errorf("invalid access token duration: %s", e.AccessTokenDuration)
	}

	return &jwtConfig{
		accessTokenSecretKey: e.AccessToken,
		accessTokenDuration:  e.AccessTokenDuration,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
