package roulette

import "time"

type TargetRequest struct {
	Kind   string `json:"kind" validate:"required,oneof=number color"` // number | color
	Number *int   `json:"number,omitempty" validate:"required_if=Kind number"`
	Color  string `json:"color,omitempty" validate:"required_if=Kind color"` // red | black
}

type EventRequest struct {
	Kind   string         `json:"kind" validate:"required,oneof=start stake target spin cancel"`
	Stake  *int           `json:"stake,omitempty" validate:"required_if=Kind stake"`
	Target *TargetRequest `json:"target,omitempty" validate:"required_if=Kind target"`
}

type OptionResponse struct {
	Label string       `json:"label"` // Текст кнопки
	Row   int          `json:"row"`   // Ряд клавиатуры
	Event EventRequest `json:"event"` // Событие, которое надо прислать при нажатии
}

type OutcomeResponse struct {
	RoundID string        `json:"round_id"`
	Number  int           `json:"number"` // 0-36
	Color   string        `json:"color"`  // red | black | zero
	Payout  int           `json:"payout"` // 0, если ставка проиграла
	Stake   int           `json:"stake"`
	Bet     TargetRequest `json:"bet"`
}

type DirectiveResponse struct {
	Text      string           `json:"text"`
	NextStage string           `json:"next_stage"`
	Options   []OptionResponse `json:"options"`
	Outcome   *OutcomeResponse `json:"outcome,omitempty"`
}

type SessionResponse struct {
	ID        string         `json:"id"`
	Stage     string         `json:"stage"`
	Stake     int            `json:"stake,omitempty"`
	Bet       *TargetRequest `json:"bet,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`
	TotalStake  int     `json:"total_stake"`
	TotalPayout int     `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	WindowSize  int     `json:"window_size"`
	WindowSpins int     `json:"window_spins"`
	WindowRTP   float64 `json:"window_rtp"`

	Deviating bool            `json:"deviating"` // RTP окна сильно отклонён от теоретического
	Alerts    []AlertResponse `json:"alerts"`
}

type AlertResponse struct {
	At        time.Time `json:"at"`
	WindowRTP float64   `json:"window_rtp"`
	Profit    int       `json:"profit"`
}

type ErrorResponse struct {
	Error   string             `json:"error"`
	Code    string             `json:"code"`              // out_of_order | missing_session_data | invalid_payload | malformed | internal
	Message string             `json:"message,omitempty"` // Сообщение для игрока
	Prompt  *DirectiveResponse `json:"prompt,omitempty"`  // Подсказка текущего этапа, чтобы переспросить
}

type FrameResponse struct {
	Index  int    `json:"index"`
	Number *int   `json:"number,omitempty"` // Промежуточное число, не влияет на результат
	Text   string `json:"text"`
}

// Типы сообщений websocket
const (
	MessageDirective = "directive"
	MessageFrame     = "frame"
	MessageError     = "error"
)

type StreamMessage struct {
	Type      string             `json:"type"`
	Directive *DirectiveResponse `json:"directive,omitempty"`
	Frame     *FrameResponse     `json:"frame,omitempty"`
	Error     *ErrorResponse     `json:"error,omitempty"`
}
