package roulette

import (
	"context"
	"fmt"
	"time"

	dto "roulette_bot/internal/api/dto/roulette"
	"roulette_bot/internal/service/roulette/wheel"

	"github.com/coder/quartz"
)

const (
	textSpinning = "🔄 Рулетка крутится..."
	textFrame    = "🎰 Выпадает: %d..."
)

// Spinner Косметическая анимация спина. Промежуточные числа берутся
// из своего источника и не влияют на настоящий розыгрыш.
type Spinner struct {
	clock  quartz.Clock
	src    wheel.Source
	frames int
	delay  time.Duration
}

func NewSpinner(clock quartz.Clock, src wheel.Source, frames int, delay time.Duration) *Spinner {
	return &Spinner{
		clock:  clock,
		src:    src,
		frames: frames,
		delay:  delay,
	}
}

// Run отдаёт в emit вступительный кадр и затем frames кадров с паузой delay.
// Возвращает ctx.Err(), если анимацию прервали.
func (s *Spinner) Run(ctx context.Context, emit func(dto.FrameResponse) error) error {
	if s.frames <= 0 {
		return ctx.Err()
	}

	if err := emit(dto.FrameResponse{Index: 0, Text: textSpinning}); err != nil {
		return err
	}

	for i := 1; i <= s.frames; i++ {
		if err := s.wait(ctx); err != nil {
			return err
		}
		n := s.src.IntN(wheel.Pockets)
		if err := emit(dto.FrameResponse{Index: i, Number: &n, Text: fmt.Sprintf(textFrame, n)}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Spinner) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	fired := make(chan struct{})
	timer := s.clock.AfterFunc(s.delay, func() {
		close(fired)
	}, "spinner")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-fired:
		return nil
	}
}
