package stats_repo

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, window int) *StateRepo {
	t.Helper()
	return NewStatsRepository(window, quartz.NewMock(t), log.New(io.Discard))
}

func TestUpdateStateTotals(t *testing.T) {
	r := newRepo(t, 10)

	r.UpdateState(10, 20)
	r.UpdateState(50, 0)
	r.UpdateState(40, 0)

	s := r.Stats()
	assert.Equal(t, 3, s.TotalSpins)
	assert.Equal(t, 100, s.TotalStake)
	assert.Equal(t, 20, s.TotalPayout)
	assert.InDelta(t, 20.0, s.CurrentRTP, 1e-9)
	assert.Equal(t, 3, s.WindowSpins)
	assert.InDelta(t, 20.0, s.WindowRTP, 1e-9)
}

func TestWindowSlides(t *testing.T) {
	r := newRepo(t, 2)

	r.UpdateState(10, 360)
	r.UpdateState(10, 0)
	r.UpdateState(10, 20)

	s := r.Stats()
	assert.Equal(t, 2, s.WindowSpins)
	// в окне остались (10,0) и (10,20)
	assert.InDelta(t, 100.0, s.WindowRTP, 1e-9)
	assert.InDelta(t, 380.0/30.0*100, s.CurrentRTP, 1e-9)
}

func TestDeviationAlertOnFullWindow(t *testing.T) {
	r := newRepo(t, 2)

	r.UpdateState(10, 0)
	require.False(t, r.Stats().Deviating, "window not full yet")

	r.UpdateState(10, 0)
	st := r.Stats()
	assert.True(t, st.Deviating)
	require.Len(t, st.Alerts, 1)
	assert.Equal(t, 20, st.Alerts[0].Profit)
	assert.InDelta(t, 0.0, st.Alerts[0].WindowRTP, 1e-9)

	// повторное отклонение не плодит предупреждения
	r.UpdateState(10, 0)
	assert.Len(t, r.Stats().Alerts, 1)

	// 20 при ставке 20 ≈ 100% RTP, в пределах нормы от 97.3%
	r.UpdateState(10, 10)
	r.UpdateState(10, 10)
	st = r.Stats()
	assert.False(t, st.Deviating)
	assert.Len(t, st.Alerts, 1, "history survives recovery")
}

func TestStatsReturnsCopy(t *testing.T) {
	r := newRepo(t, 2)
	r.UpdateState(10, 0)
	r.UpdateState(10, 0)

	st := r.Stats()
	require.Len(t, st.Alerts, 1)
	st.Alerts[0].Profit = 1000

	assert.Equal(t, 20, r.Stats().Alerts[0].Profit)
}
