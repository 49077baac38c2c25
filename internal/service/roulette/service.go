package roulette

import (
	"context"
	"errors"
	"fmt"

	"roulette_bot/internal/metrics"
	"roulette_bot/internal/model"
	"roulette_bot/internal/repository"
	"roulette_bot/internal/service"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type serv struct {
	machine     *Machine
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository
	metrics     *metrics.Metrics
	logger      *log.Logger
}

// NewRouletteService Сервис рулетки поверх машины состояний и хранилища сессий
func NewRouletteService(
	machine *Machine,
	sessionRepo repository.SessionRepository,
	statsRepo repository.StatsRepository,
	m *metrics.Metrics,
	logger *log.Logger,
) service.RouletteService {
	return &serv{
		machine:     machine,
		sessionRepo: sessionRepo,
		statsRepo:   statsRepo,
		metrics:     m,
		logger:      logger.WithPrefix("roulette"),
	}
}

func (s *serv) Handle(ctx context.Context, ev model.Event) (*model.Directive, error) {
	const op = "service.roulette.Handle"

	if ev.SessionID == "" {
		return nil, fmt.Errorf("%s: %w", op, &model.PayloadError{Field: "session", Message: "empty session id"})
	}

	var (
		directive *model.Directive
		missing   error
	)
	_, err := s.sessionRepo.Update(ctx, ev.SessionID, func(sess *model.Session) error {
		next, d, err := s.machine.Transition(*sess, ev)
		if err != nil {
			if errors.Is(err, model.ErrMissingSessionData) {
				// Сохраняем сброшенную сессию, но наружу отдаём ошибку
				*sess = next
				missing = err
				return nil
			}
			return err
		}
		*sess = next
		directive = d
		return nil
	})

	logger := s.logger.With("session", ev.SessionID, "event", ev.Kind)

	switch {
	case missing != nil:
		s.metrics.Event(ev.Kind.String(), "missing_data")
		logger.Warn("spin without stake or bet, session reset", "error", missing)
		return nil, fmt.Errorf("%s: %w", op, missing)
	case errors.Is(err, model.ErrOutOfOrderEvent):
		s.metrics.Event(ev.Kind.String(), "out_of_order")
		logger.Debug("event rejected", "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, model.ErrInvalidPayload):
		s.metrics.Event(ev.Kind.String(), "invalid")
		logger.Debug("invalid payload", "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	case err != nil:
		s.metrics.Event(ev.Kind.String(), "error")
		logger.Error("failed to handle event", "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Event(ev.Kind.String(), "accepted")
	logger.Debug("event accepted", "stage", directive.NextStage)

	if outcome := directive.Outcome; outcome != nil {
		outcome.RoundID = uuid.NewString()
		s.statsRepo.UpdateState(outcome.Stake, outcome.Payout)
		s.metrics.Spin(outcome.Bet.Type.String(), outcome.Stake, outcome.Payout)
		logger.Info("spin resolved",
			"round", outcome.RoundID,
			"number", outcome.Number,
			"color", outcome.Color,
			"bet", outcome.Bet,
			"stake", outcome.Stake,
			"payout", outcome.Payout)
	}

	return directive, nil
}

func (s *serv) Prompt(ctx context.Context, sessionID string) (*model.Directive, error) {
	sess, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service.roulette.Prompt: %w", err)
	}
	return s.machine.Prompt(sess), nil
}

func (s *serv) Session(ctx context.Context, sessionID string) (model.Session, error) {
	sess, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return model.Session{}, fmt.Errorf("service.roulette.Session: %w", err)
	}
	return sess, nil
}

func (s *serv) Accepts(ctx context.Context, sessionID string, kind model.EventKind) (bool, error) {
	sess, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("service.roulette.Accepts: %w", err)
	}
	return s.machine.Accepts(sess.Stage, kind), nil
}

// Abandon удаляет сессию: неизвестный id читается как новая сессия в Idle
func (s *serv) Abandon(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service.roulette.Abandon: %w", err)
	}

	s.metrics.Event("spin", "abandoned")
	s.logger.Info("spin abandoned, session reset", "session", sessionID)
	return nil
}

func (s *serv) Stats() model.Stats {
	return s.statsRepo.Stats()
}
