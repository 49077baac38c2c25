package main

import (
	"fmt"
	"time"

	"roulette_bot/internal/config"
	"roulette_bot/internal/config/env"
	"roulette_bot/pkg/token"
)

type TokenCmd struct {
	Session string        `kong:"required,help='Chat session id, becomes the token subject'"`
	TTL     time.Duration `kong:"name='ttl',help='Token lifetime (default: ACCESS_TOKEN_DURATION)'"`
	EnvFile string        `kong:"default='.env',help='Path to .env file with ACCESS_TOKEN'"`
}

func (c *TokenCmd) Run() error {
	_ = config.Load(c.EnvFile)

	cfg, err := env.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("jwt config: %w", err)
	}

	ttl := c.TTL
	if ttl <= 0 {
		ttl = cfg.AccessTokenDuration()
	}

	tok, err := token.GenerateAccessToken(c.Session, cfg.AccessTokenSecretKey(), ttl)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	return nil
}
