package stats_repo

import (
	"math"
	"sync"

	"roulette_bot/internal/model"
	"roulette_bot/internal/repository"
	repoModel "roulette_bot/internal/repository/stats_repo/model"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

const (
	// TheoreticalRTP RTP колеса с одним зеро: 36/37
	TheoreticalRTP = 36.0 / 37.0 * 100
	// criticalRTPDeviation отклонение RTP окна, при котором пишем предупреждение
	criticalRTPDeviation = 10.0
	// normalRTPDeviation отклонение, при котором считаем, что RTP вернулся в норму
	normalRTPDeviation = 5.0
	// maxAlerts сколько последних предупреждений храним
	maxAlerts = 100
)

// Реализация репозитория для хранения статистики рулетки
type StateRepo struct {
	mtx    sync.RWMutex
	clock  quartz.Clock
	logger *log.Logger
	state  repoModel.RouletteState
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository(windowSize int, clock quartz.Clock, logger *log.Logger) *StateRepo {
	return &StateRepo{
		clock:  clock,
		logger: logger.WithPrefix("stats"),
		state: repoModel.RouletteState{
			TargetRTP:  TheoreticalRTP,
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowSize: windowSize,
			Alerts:     make([]repoModel.AlertLog, 0),
		},
	}
}

var _ repository.StatsRepository = (*StateRepo)(nil)

// Stats Сводка для API
func (r *StateRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	alerts := make([]model.RTPAlert, len(r.state.Alerts))
	for i, a := range r.state.Alerts {
		alerts[i] = model.RTPAlert{At: a.Timestamp, WindowRTP: a.WindowRTP, Profit: a.Profit}
	}

	return model.Stats{
		TotalSpins:  r.state.TotalSpins,
		TotalStake:  r.state.TotalStake,
		TotalPayout: r.state.TotalPayout,
		CurrentRTP:  r.state.CurrentRTP,
		WindowSize:  r.state.WindowSize,
		WindowSpins: len(r.state.SpinWindow),
		WindowRTP:   r.state.WindowRTP,
		Deviating:   r.state.Deviating,
		Alerts:      alerts,
	}
}

// UpdateState Обновление статистики после спина
func (r *StateRepo) UpdateState(stake, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalStake += stake
	r.state.TotalPayout += payout
	if r.state.TotalStake > 0 {
		r.state.CurrentRTP = float64(r.state.TotalPayout) / float64(r.state.TotalStake) * 100
	}

	// Добавляем спин в окно и поддерживаем его размер
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Stake:  stake,
		Payout: payout,
	})
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	var windowStake, windowPayout int
	for _, spin := range r.state.SpinWindow {
		windowStake += spin.Stake
		windowPayout += spin.Payout
	}
	if windowStake > 0 {
		r.state.WindowRTP = float64(windowPayout) / float64(windowStake) * 100
	} else {
		r.state.WindowRTP = 0
	}

	r.checkDeviation()
}

// checkDeviation проверяет отклонение RTP окна только на полном окне.
// Вызывается под записывающей блокировкой.
func (r *StateRepo) checkDeviation() {
	if len(r.state.SpinWindow) < r.state.WindowSize {
		return
	}

	diff := math.Abs(r.state.WindowRTP - r.state.TargetRTP)

	if !r.state.Deviating && diff > criticalRTPDeviation {
		r.state.Deviating = true
		r.state.Alerts = append(r.state.Alerts, repoModel.AlertLog{
			Timestamp: r.clock.Now(),
			WindowRTP: r.state.WindowRTP,
			Profit:    r.state.TotalStake - r.state.TotalPayout,
		})
		if len(r.state.Alerts) > maxAlerts {
			r.state.Alerts = r.state.Alerts[1:]
		}
		r.logger.Warn("window RTP deviates from theoretical",
			"windowRTP", r.state.WindowRTP,
			"targetRTP", r.state.TargetRTP,
			"spins", r.state.TotalSpins)
		return
	}

	if r.state.Deviating && diff < normalRTPDeviation {
		r.state.Deviating = false
		r.logger.Info("window RTP back to normal", "windowRTP", r.state.WindowRTP)
	}
}
