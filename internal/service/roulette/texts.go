package roulette

import (
	"fmt"
	"strconv"

	"roulette_bot/internal/model"
	"roulette_bot/internal/service/roulette/wheel"
)

const (
	textWelcome      = "🎰 Добро пожаловать в рулетку!"
	textChooseStake  = "🎰 Рулетка\nВыберите ставку:"
	textChooseTarget = "Ставка: %d\nВыберите число или цвет:"
	textReady        = "Ставка: %d\nВаш выбор: %s\n\nГотовы крутить?"
	textResult       = "🎰 Результат: %d (%s)\nВаша ставка: %s\nСумма ставки: %d\n\n%s"
	textWin          = "🎉 Поздравляем! Вы выиграли %d"
	textLose         = "😢 К сожалению, вы проиграли"
	textCancelled    = "❌ Действие отменено"

	labelPlay      = "🎰 Играть в рулетку"
	labelPlayAgain = "🎰 Играть снова"
	labelRed       = "🔴 Красное"
	labelBlack     = "⚫ Чёрное"
	labelSpin      = "🎯 Крутить рулетку!"
	labelCancel    = "Отмена"

	msgStakePositive = "Ставка должна быть положительным числом"
	msgStakeTooHigh  = "Максимальная ставка: %d"
	msgNumberRange   = "Число должно быть от 0 до 36"
	msgColor         = "Можно ставить только на красное или чёрное"
	msgTargetKind    = "Выберите число или цвет"

	numbersPerRow = 6
)

func welcomePrompt() *model.Directive {
	return &model.Directive{
		Text:      textWelcome,
		NextStage: model.StageIdle,
		Options:   []model.Option{{Label: labelPlay, Event: model.Event{Kind: model.EventStart}}},
	}
}

func (m *Machine) betPrompt() *model.Directive {
	options := make([]model.Option, 0, len(m.stakes)+1)
	for _, stake := range m.stakes {
		options = append(options, model.Option{
			Label: strconv.Itoa(stake),
			Row:   0,
			Event: model.Event{Kind: model.EventSelectStake, Stake: stake},
		})
	}
	options = append(options, cancelOption(1))

	return &model.Directive{
		Text:      textChooseStake,
		NextStage: model.StageChoosingBet,
		Options:   options,
	}
}

func (m *Machine) targetPrompt(stake int) *model.Directive {
	options := make([]model.Option, 0, wheel.Pockets+3)
	row := 0
	for n := 0; n <= wheel.MaxNumber; n++ {
		row = n / numbersPerRow
		options = append(options, model.Option{
			Label: strconv.Itoa(n),
			Row:   row,
			Event: model.Event{
				Kind:   model.EventSelectTarget,
				Target: model.Bet{Type: model.BetTypeNumber, Number: n},
			},
		})
	}
	options = append(options,
		colorOption(labelRed, model.ColorRed, row+1),
		colorOption(labelBlack, model.ColorBlack, row+1),
		cancelOption(row+2),
	)

	return &model.Directive{
		Text:      fmt.Sprintf(textChooseTarget, stake),
		NextStage: model.StageChoosingTarget,
		Options:   options,
	}
}

func (m *Machine) spinPrompt(stake int, bet model.Bet) *model.Directive {
	return &model.Directive{
		Text:      fmt.Sprintf(textReady, stake, bet),
		NextStage: model.StageReadyToSpin,
		Options: []model.Option{
			{Label: labelSpin, Row: 0, Event: model.Event{Kind: model.EventSpin}},
			cancelOption(1),
		},
	}
}

func resultDirective(outcome model.SpinOutcome) *model.Directive {
	verdict := textLose
	if outcome.Won() {
		verdict = fmt.Sprintf(textWin, outcome.Payout)
	}

	return &model.Directive{
		Text:      fmt.Sprintf(textResult, outcome.Number, outcome.Color, outcome.Bet, outcome.Stake, verdict),
		NextStage: model.StageIdle,
		Options:   []model.Option{{Label: labelPlayAgain, Event: model.Event{Kind: model.EventStart}}},
		Outcome:   &outcome,
	}
}

func cancelDirective() *model.Directive {
	return &model.Directive{
		Text:      textCancelled,
		NextStage: model.StageIdle,
		Options:   []model.Option{{Label: labelPlay, Event: model.Event{Kind: model.EventStart}}},
	}
}

func colorOption(label string, color model.Color, row int) model.Option {
	return model.Option{
		Label: label,
		Row:   row,
		Event: model.Event{
			Kind:   model.EventSelectTarget,
			Target: model.Bet{Type: model.BetTypeColor, Color: color},
		},
	}
}

func cancelOption(row int) model.Option {
	return model.Option{Label: labelCancel, Row: row, Event: model.Event{Kind: model.EventCancel}}
}
