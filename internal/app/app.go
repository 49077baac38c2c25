package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"roulette_bot/internal/config"
	"roulette_bot/internal/repository/session_repo"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	EnvFile    string // .env файл, отсутствие не ошибка
	ConfigPath string // YAML с настройками игры, пусто - из ROULETTE_CONFIG
}

type App struct {
	ServiceProvider *ServiceProvider
	opts            Options
}

func NewApp(opts Options) *App {
	return &App{opts: opts}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.opts.ConfigPath)
}

// Run поднимает HTTP сервер и чистильщик сессий, работает до отмены ctx
func (s *App) Run(ctx context.Context) error {
	envErr := config.Load(s.opts.EnvFile)
	s.initServiceProvider()

	sp := s.ServiceProvider
	logger := sp.Logger()
	if envErr != nil {
		logger.Debug("env file not loaded", "path", s.opts.EnvFile, "error", envErr)
	}

	httpCfg := sp.HTTPCfg()
	srv := &http.Server{
		Addr:        httpCfg.Address(),
		Handler:     sp.Router(ctx),
		ReadTimeout: httpCfg.ReadTimeout(),
		IdleTimeout: httpCfg.IdleTimeout(),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		s.runJanitor(ctx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "address", httpCfg.Address())
		serverErr <- srv.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("app.Run: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = fmt.Errorf("app.Run: shutdown: %w", err)
		}
	}

	cancel()
	<-janitorDone
	logger.Info("server stopped")
	return runErr
}

// runJanitor удаляет сессии, простаивающие дольше SESSION_TTL
func (s *App) runJanitor(ctx context.Context) {
	sp := s.ServiceProvider
	cfg := sp.SessionCfg()

	w := session_repo.StartJanitor(ctx, sp.Clock(), sp.SessionRepository(), cfg.TTL(), cfg.JanitorInterval(), sp.Logger())
	// Ошибка отмены контекста означает штатную остановку
	_ = w.Wait()
}
