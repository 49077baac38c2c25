package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelKind    = "kind"
	labelResult  = "result"
	labelBetType = "bet_type"
)

// Имена метрик: roulette_<name>

// Metrics Счётчики рулетки. Регистрируются в переданном реестре.
type Metrics struct {
	events *prometheus.CounterVec
	spins  *prometheus.CounterVec
	staked prometheus.Counter
	paid   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "roulette_events_total",
			Help: "Входящие события по виду и результату обработки",
		}, []string{labelKind, labelResult}),
		spins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "roulette_spins_total",
			Help: "Разыгранные спины по типу ставки и исходу",
		}, []string{labelBetType, labelResult}),
		staked: f.NewCounter(prometheus.CounterOpts{
			Name: "roulette_staked_total",
			Help: "Сумма всех разыгранных ставок",
		}),
		paid: f.NewCounter(prometheus.CounterOpts{
			Name: "roulette_paid_total",
			Help: "Сумма всех выплат",
		}),
	}
}

// RegisterSessionGauge регистрирует gauge с количеством сессий в памяти
func RegisterSessionGauge(reg prometheus.Registerer, count func() int) {
	promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Name: "roulette_sessions",
		Help: "Сессии, хранящиеся в памяти",
	}, func() float64 {
		return float64(count())
	})
}

// Event учитывает событие. result: accepted, out_of_order, invalid, missing_data, error
func (m *Metrics) Event(kind, result string) {
	m.events.WithLabelValues(kind, result).Inc()
}

// Spin учитывает разыгранный спин
func (m *Metrics) Spin(betType string, stake, payout int) {
	result := "lose"
	if payout > 0 {
		result = "win"
	}
	m.spins.WithLabelValues(betType, result).Inc()
	m.staked.Add(float64(stake))
	m.paid.Add(float64(payout))
}
