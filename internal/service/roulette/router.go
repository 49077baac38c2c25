package roulette

import (
	"fmt"

	"roulette_bot/internal/model"
)

// HandlerFunc Обработчик перехода. Получает копию сессии и меняет её только при успехе.
type HandlerFunc func(s *model.Session, ev model.Event) (*model.Directive, error)

type routeKey struct {
	stage model.Stage
	kind  model.EventKind
}

// Router Таблица переходов (этап, событие) -> обработчик.
// Собирается один раз в NewMachine.
type Router struct {
	routes map[routeKey]HandlerFunc
}

func NewRouter() *Router {
	return &Router{routes: make(map[routeKey]HandlerFunc)}
}

// Handle регистрирует обработчик события на этапе
func (r *Router) Handle(stage model.Stage, kind model.EventKind, fn HandlerFunc) {
	r.routes[routeKey{stage: stage, kind: kind}] = fn
}

// Accepts сообщает, принимает ли этап событие
func (r *Router) Accepts(stage model.Stage, kind model.EventKind) bool {
	_, ok := r.routes[routeKey{stage: stage, kind: kind}]
	return ok
}

// Dispatch находит обработчик для текущего этапа сессии
func (r *Router) Dispatch(s *model.Session, ev model.Event) (*model.Directive, error) {
	fn, ok := r.routes[routeKey{stage: s.Stage, kind: ev.Kind}]
	if !ok {
		return nil, fmt.Errorf("%s at %s: %w", ev.Kind, s.Stage, model.ErrOutOfOrderEvent)
	}
	return fn(s, ev)
}
