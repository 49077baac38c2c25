package model

// SpinOutcome Результат одного спина. Нигде не сохраняется.
type SpinOutcome struct {
	RoundID string
	Number  int
	Color   Color
	Payout  int
	Stake   int
	Bet     Bet
}

// Won сообщает, выиграла ли ставка
func (o SpinOutcome) Won() bool {
	return o.Payout > 0
}
