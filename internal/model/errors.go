package model

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfOrderEvent событие не подходит для текущего этапа. Сессия не меняется.
	ErrOutOfOrderEvent = errors.New("event is not accepted at this stage")
	// ErrMissingSessionData спин без ставки или цели. Сессия сбрасывается в Idle.
	ErrMissingSessionData = fmt.Errorf("%w: stake or bet is missing", ErrOutOfOrderEvent)
	// ErrInvalidPayload некорректная ставка или цель. Этап не меняется.
	ErrInvalidPayload = errors.New("invalid payload")
)

// PayloadError Ошибка валидации события с сообщением для игрока.
// errors.Is(err, ErrInvalidPayload) == true.
type PayloadError struct {
	Field   string
	Message string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidPayload, e.Field, e.Message)
}

func (e *PayloadError) Unwrap() error {
	return ErrInvalidPayload
}
