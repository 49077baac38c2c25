package wheel

import (
	"math"

	"roulette_bot/internal/model"
)

const (
	// Pockets Количество секторов европейской рулетки (0..36)
	Pockets = 37
	// MaxNumber Наибольшее число на колесе
	MaxNumber = Pockets - 1
	// NumberMultiplier Выплата за угаданное число в кратности ставки
	NumberMultiplier = 36
	// ColorMultiplier Выплата за угаданный цвет в кратности ставки
	ColorMultiplier = 2
	// MaxStake Наибольшая ставка, выплата по которой ещё помещается в int
	MaxStake = math.MaxInt / NumberMultiplier
)

// Красные номера колеса. Все остальные ненулевые - чёрные.
var redNumbers = [...]int{1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36}

var isRed [Pockets]bool

func init() {
	for _, n := range redNumbers {
		isRed[n] = true
	}
}

// Wheel Колесо рулетки. Итог спина зависит только от источника случайности.
type Wheel struct {
	src Source
}

// New создаёт колесо поверх источника случайных чисел
func New(src Source) *Wheel {
	return &Wheel{src: src}
}

// Draw выбирает выпавшее число равновероятно из 0..36
func (w *Wheel) Draw() int {
	return w.src.IntN(Pockets)
}

// Resolve делает спин и считает выплату по ставке
func (w *Wheel) Resolve(stake int, bet model.Bet) model.SpinOutcome {
	number := w.Draw()
	return model.SpinOutcome{
		Number: number,
		Color:  ColorOf(number),
		Payout: Payout(stake, bet, number),
		Stake:  stake,
		Bet:    bet,
	}
}

// ColorOf возвращает цвет сектора. Для чисел вне колеса возвращает ColorNone.
func ColorOf(number int) model.Color {
	switch {
	case !ValidNumber(number):
		return model.ColorNone
	case number == 0:
		return model.ColorZero
	case isRed[number]:
		return model.ColorRed
	default:
		return model.ColorBlack
	}
}

// Payout считает выигрыш ставки при выпавшем числе.
// Ставка на цвет никогда не играет на зеро.
func Payout(stake int, bet model.Bet, number int) int {
	switch bet.Type {
	case model.BetTypeNumber:
		if bet.Number == number {
			return stake * NumberMultiplier
		}
	case model.BetTypeColor:
		color := ColorOf(number)
		if color != model.ColorZero && bet.Color == color {
			return stake * ColorMultiplier
		}
	}
	return 0
}

// ValidNumber проверяет, что число есть на колесе
func ValidNumber(n int) bool {
	return n >= 0 && n <= MaxNumber
}

// RedNumbers возвращает копию набора красных номеров
func RedNumbers() []int {
	out := make([]int, len(redNumbers))
	copy(out, redNumbers[:])
	return out
}
