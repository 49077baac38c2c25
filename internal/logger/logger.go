package logger

import (
	"io"
	"os"
	"time"

	"roulette_bot/internal/config/env"

	"github.com/charmbracelet/log"
)

// New настраивает логгер под окружение: local - читаемый текст,
// dev и prod - JSON. Пустой level означает debug для local/dev и info для prod.
func New(w io.Writer, environment, level string) (*log.Logger, error) {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	}

	switch environment {
	case env.EnvDev:
		opts.Formatter = log.JSONFormatter
	case env.EnvProd:
		opts.Formatter = log.JSONFormatter
		opts.Level = log.InfoLevel
	default:
		opts.Formatter = log.TextFormatter
	}

	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		opts.Level = lvl
	}

	return log.NewWithOptions(w, opts), nil
}

// MustNew как New, но пишет в stderr и падает на неверном уровне
func MustNew(environment, level string) *log.Logger {
	l, err := New(os.Stderr, environment, level)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	return l
}

// Discard логгер для тестов
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}
