package service

import (
	"context"

	"roulette_bot/internal/model"
)

// RouletteService Обработка событий диалога рулетки
type RouletteService interface {
	// Handle применяет событие к сессии ev.SessionID и возвращает ответ для чат-моста
	Handle(ctx context.Context, ev model.Event) (*model.Directive, error)
	// Prompt возвращает подсказку текущего этапа сессии
	Prompt(ctx context.Context, sessionID string) (*model.Directive, error)
	Session(ctx context.Context, sessionID string) (model.Session, error)
	// Accepts сообщает, примет ли текущий этап сессии событие данного вида
	Accepts(ctx context.Context, sessionID string, kind model.EventKind) (bool, error)
	// Abandon сбрасывает сессию в Idle без выплаты (брошенный спин)
	Abandon(ctx context.Context, sessionID string) error
	Stats() model.Stats
}
