package model

import "time"

// Stats Статистика всех спинов с момента запуска
type Stats struct {
	TotalSpins  int
	TotalStake  int
	TotalPayout int
	CurrentRTP  float64 // TotalPayout/TotalStake*100

	WindowSize  int
	WindowSpins int
	WindowRTP   float64

	Deviating bool       // RTP окна сейчас сильно отклонён от теоретического
	Alerts    []RTPAlert // Последние отклонения, от старых к новым
}

// RTPAlert Зафиксированное отклонение RTP окна
type RTPAlert struct {
	At        time.Time
	WindowRTP float64
	Profit    int // Выигрыш заведения на момент отклонения
}
