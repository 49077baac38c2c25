package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"roulette_bot/internal/app"
)

type ServeCmd struct {
	EnvFile string `kong:"default='.env',help='Path to .env file (missing file is ignored)'"`
	Config  string `kong:"help='Path to game YAML config (default: $ROULETTE_CONFIG or config.yaml)'"`
}

func (c *ServeCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.NewApp(app.Options{
		EnvFile:    c.EnvFile,
		ConfigPath: c.Config,
	}).Run(ctx)
}
