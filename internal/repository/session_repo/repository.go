package session_repo

import (
	"context"
	"sync"
	"time"

	"roulette_bot/internal/model"
	"roulette_bot/internal/repository"

	"github.com/coder/quartz"
)

// Хранилище сессий. Весь доступ под одним мьютексом,
// поэтому Update для одного id не может перемешаться с другим Update.
type repo struct {
	mtx      sync.Mutex
	clock    quartz.Clock
	sessions map[string]model.Session
}

func NewSessionRepository(clock quartz.Clock) repository.SessionRepository {
	return &repo{
		clock:    clock,
		sessions: make(map[string]model.Session),
	}
}

func (r *repo) Get(ctx context.Context, id string) (model.Session, error) {
	if err := ctx.Err(); err != nil {
		return model.Session{}, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return model.NewSession(id), nil
	}
	return s.Clone(), nil
}

func (r *repo) Update(ctx context.Context, id string, fn func(*model.Session) error) (model.Session, error) {
	if err := ctx.Err(); err != nil {
		return model.Session{}, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	current, ok := r.sessions[id]
	if !ok {
		current = model.NewSession(id)
	}

	// fn работает с копией, чтобы ошибка не оставила сессию наполовину изменённой
	next := current.Clone()
	if err := fn(&next); err != nil {
		return current.Clone(), err
	}

	next.ID = id
	next.UpdatedAt = r.clock.Now()
	r.sessions[id] = next

	return next.Clone(), nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *repo) EvictStale(before time.Time) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(before) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *repo) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.sessions)
}
