package session_repo

import (
	"context"
	"time"

	"roulette_bot/internal/repository"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// StartJanitor раз в interval удаляет сессии, простаивающие дольше ttl.
// Останавливается с отменой ctx, Wait у результата дожидается остановки.
func StartJanitor(
	ctx context.Context,
	clock quartz.Clock,
	repo repository.SessionRepository,
	ttl, interval time.Duration,
	logger *log.Logger,
) quartz.Waiter {
	logger = logger.WithPrefix("janitor")

	return clock.TickerFunc(ctx, interval, func() error {
		if n := repo.EvictStale(clock.Now().Add(-ttl)); n > 0 {
			logger.Info("stale sessions evicted", "count", n, "left", repo.Len())
		}
		return nil
	}, "janitor")
}
