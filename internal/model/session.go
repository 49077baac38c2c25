package model

import (
	"strconv"
	"time"
)

// Stage Этап диалога со ставкой
type Stage int

const (
	StageIdle Stage = iota
	StageChoosingBet
	StageChoosingTarget
	StageReadyToSpin
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageChoosingBet:
		return "choosing_bet"
	case StageChoosingTarget:
		return "choosing_target"
	case StageReadyToSpin:
		return "ready_to_spin"
	default:
		return "unknown"
	}
}

// Valid проверяет, что значение является одним из четырёх этапов
func (s Stage) Valid() bool {
	return s >= StageIdle && s <= StageReadyToSpin
}

// BetType Тип ставки: на число или на цвет
type BetType int

const (
	BetTypeNone BetType = iota
	BetTypeNumber
	BetTypeColor
)

func (b BetType) String() string {
	switch b {
	case BetTypeNumber:
		return "number"
	case BetTypeColor:
		return "color"
	default:
		return ""
	}
}

// Color Цвет сектора колеса
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorBlack
	ColorZero
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlack:
		return "black"
	case ColorZero:
		return "zero"
	default:
		return ""
	}
}

// ParseColor разбирает цвет ставки. Zero не является цветом для ставки.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "red":
		return ColorRed, true
	case "black":
		return ColorBlack, true
	default:
		return ColorNone, false
	}
}

// Bet Выбранная цель ставки
type Bet struct {
	Type   BetType
	Number int   // 0..36, только для BetTypeNumber
	Color  Color // Red или Black, только для BetTypeColor
}

// String возвращает выбор в том виде, в котором его видит игрок
func (b Bet) String() string {
	if b.Type == BetTypeColor {
		return b.Color.String()
	}
	return strconv.Itoa(b.Number)
}

// Session Состояние игры одного диалога
type Session struct {
	ID        string
	Stage     Stage
	Stake     int  // 0 - ставка ещё не выбрана
	Bet       *Bet // nil - цель ещё не выбрана
	UpdatedAt time.Time
}

// NewSession создаёт пустую сессию в состоянии Idle
func NewSession(id string) Session {
	return Session{ID: id, Stage: StageIdle}
}

// Reset очищает все поля и возвращает сессию в Idle
func (s *Session) Reset() {
	s.Stage = StageIdle
	s.Stake = 0
	s.Bet = nil
}

// Clone возвращает копию, не разделяющую Bet с оригиналом
func (s Session) Clone() Session {
	if s.Bet != nil {
		b := *s.Bet
		s.Bet = &b
	}
	return s
}
