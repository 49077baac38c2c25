package model

import "time"

// Состояние статистики рулетки
type RouletteState struct {
	TotalSpins  int // Сколько всего спинов сделано
	TotalStake  int // Сумма всех ставок
	TotalPayout int // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalStake)*100
	TargetRTP  float64 // Теоретический RTP колеса

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна для анализа RTP

	Deviating bool       // RTP окна сильно отклонился от теоретического
	Alerts    []AlertLog // Лог отклонений
}

// Лог отклонения RTP окна
type AlertLog struct {
	Timestamp time.Time
	WindowRTP float64
	Profit    int
}

// Результат спина для окна
type SpinResult struct {
	Stake  int
	Payout int
}
