package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Load подгружает переменные окружения из .env файла
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	IdleTimeout() time.Duration
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LogConfig interface {
	Env() string
	Level() string
}

type SessionConfig interface {
	TTL() time.Duration
	JanitorInterval() time.Duration
}

type RouletteConfig interface {
	Stakes() []int
	MaxStake() int
	AnimationFrames() int
	AnimationDelay() time.Duration
	StatsWindowSize() int
	Seed() uint64
}
