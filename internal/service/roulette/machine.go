package roulette

import (
	"errors"
	"fmt"

	"roulette_bot/internal/model"
	"roulette_bot/internal/service/roulette/wheel"
)

// Machine Машина состояний ставки: Idle -> ChoosingBet -> ChoosingTarget -> ReadyToSpin -> Idle.
// Cancel с любого не-Idle этапа возвращает в Idle.
type Machine struct {
	router   *Router
	wheel    *wheel.Wheel
	stakes   []int
	maxStake int
}

// NewMachine собирает таблицу переходов.
// stakes - предложенные кнопками ставки, maxStake - верхний предел
// (0 или больше wheel.MaxStake означает wheel.MaxStake).
func NewMachine(w *wheel.Wheel, stakes []int, maxStake int) *Machine {
	if maxStake <= 0 || maxStake > wheel.MaxStake {
		maxStake = wheel.MaxStake
	}

	m := &Machine{
		router:   NewRouter(),
		wheel:    w,
		stakes:   append([]int(nil), stakes...),
		maxStake: maxStake,
	}

	m.router.Handle(model.StageIdle, model.EventStart, m.start)
	m.router.Handle(model.StageChoosingBet, model.EventSelectStake, m.selectStake)
	m.router.Handle(model.StageChoosingTarget, model.EventSelectTarget, m.selectTarget)
	m.router.Handle(model.StageReadyToSpin, model.EventSpin, m.spin)
	for _, stage := range []model.Stage{model.StageChoosingBet, model.StageChoosingTarget, model.StageReadyToSpin} {
		m.router.Handle(stage, model.EventCancel, m.cancel)
	}

	return m
}

// Transition применяет событие к сессии.
// При отказе возвращается исходная сессия без изменений, кроме ErrMissingSessionData:
// тогда сессия сбрасывается в Idle.
func (m *Machine) Transition(s model.Session, ev model.Event) (model.Session, *model.Directive, error) {
	const op = "roulette.Transition"

	next := s.Clone()
	directive, err := m.router.Dispatch(&next, ev)
	if err != nil {
		if errors.Is(err, model.ErrMissingSessionData) {
			reset := s.Clone()
			reset.Reset()
			return reset, nil, fmt.Errorf("%s: %w", op, err)
		}
		return s, nil, fmt.Errorf("%s: %w", op, err)
	}
	return next, directive, nil
}

// Accepts сообщает, примет ли этап событие данного вида
func (m *Machine) Accepts(stage model.Stage, kind model.EventKind) bool {
	return m.router.Accepts(stage, kind)
}

// Prompt возвращает подсказку текущего этапа, чтобы переспросить игрока
func (m *Machine) Prompt(s model.Session) *model.Directive {
	switch s.Stage {
	case model.StageChoosingBet:
		return m.betPrompt()
	case model.StageChoosingTarget:
		return m.targetPrompt(s.Stake)
	case model.StageReadyToSpin:
		if s.Bet != nil {
			return m.spinPrompt(s.Stake, *s.Bet)
		}
	}
	return welcomePrompt()
}

func (m *Machine) start(s *model.Session, _ model.Event) (*model.Directive, error) {
	s.Stage = model.StageChoosingBet
	return m.betPrompt(), nil
}

func (m *Machine) selectStake(s *model.Session, ev model.Event) (*model.Directive, error) {
	if err := m.validateStake(ev.Stake); err != nil {
		return nil, err
	}

	s.Stake = ev.Stake
	s.Stage = model.StageChoosingTarget
	return m.targetPrompt(s.Stake), nil
}

func (m *Machine) selectTarget(s *model.Session, ev model.Event) (*model.Directive, error) {
	bet, err := validateTarget(ev.Target)
	if err != nil {
		return nil, err
	}

	s.Bet = &bet
	s.Stage = model.StageReadyToSpin
	return m.spinPrompt(s.Stake, bet), nil
}

func (m *Machine) spin(s *model.Session, _ model.Event) (*model.Directive, error) {
	if s.Stake <= 0 || s.Bet == nil {
		return nil, model.ErrMissingSessionData
	}

	outcome := m.wheel.Resolve(s.Stake, *s.Bet)
	s.Reset()
	return resultDirective(outcome), nil
}

func (m *Machine) cancel(s *model.Session, _ model.Event) (*model.Directive, error) {
	s.Reset()
	return cancelDirective(), nil
}

func (m *Machine) validateStake(stake int) error {
	if stake <= 0 {
		return &model.PayloadError{Field: "stake", Message: msgStakePositive}
	}
	if stake > m.maxStake {
		return &model.PayloadError{Field: "stake", Message: fmt.Sprintf(msgStakeTooHigh, m.maxStake)}
	}
	return nil
}

func validateTarget(t model.Bet) (model.Bet, error) {
	switch t.Type {
	case model.BetTypeNumber:
		if !wheel.ValidNumber(t.Number) {
			return model.Bet{}, &model.PayloadError{Field: "target.number", Message: msgNumberRange}
		}
		return model.Bet{Type: model.BetTypeNumber, Number: t.Number}, nil
	case model.BetTypeColor:
		if t.Color != model.ColorRed && t.Color != model.ColorBlack {
			return model.Bet{}, &model.PayloadError{Field: "target.color", Message: msgColor}
		}
		return model.Bet{Type: model.BetTypeColor, Color: t.Color}, nil
	default:
		return model.Bet{}, &model.PayloadError{Field: "target.kind", Message: msgTargetKind}
	}
}
