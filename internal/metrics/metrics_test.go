package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSpinCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Spin("number", 50, 1800)
	m.Spin("color", 10, 0)

	assert.InDelta(t, 1, testutil.ToFloat64(m.spins.WithLabelValues("number", "win")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.spins.WithLabelValues("color", "lose")), 0)
	assert.InDelta(t, 60, testutil.ToFloat64(m.staked), 0)
	assert.InDelta(t, 1800, testutil.ToFloat64(m.paid), 0)
}

func TestEventCounter(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Event("spin", "out_of_order")
	m.Event("spin", "out_of_order")

	assert.InDelta(t, 2, testutil.ToFloat64(m.events.WithLabelValues("spin", "out_of_order")), 0)
}

func TestSessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterSessionGauge(reg, func() int { return 3 })

	n, err := testutil.GatherAndCount(reg, "roulette_sessions")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
