package repository

import (
	"context"
	"time"

	"roulette_bot/internal/model"
)

// SessionRepository Хранилище сессий в памяти процесса, ключ - идентификатор диалога
type SessionRepository interface {
	// Get возвращает копию сессии. Неизвестный id читается как новая сессия в Idle.
	Get(ctx context.Context, id string) (model.Session, error)
	// Update атомарно для данного id применяет fn к копии сессии.
	// Копия сохраняется только если fn вернула nil.
	Update(ctx context.Context, id string, fn func(*model.Session) error) (model.Session, error)
	// Delete забывает сессию, следующий Get вернёт новую сессию в Idle
	Delete(ctx context.Context, id string) error
	// EvictStale удаляет сессии, не менявшиеся с момента before. Возвращает количество удалённых.
	EvictStale(before time.Time) int
	Len() int
}

// StatsRepository Статистика выплат по всем спинам
type StatsRepository interface {
	Stats() model.Stats
	UpdateState(stake, payout int)
}
