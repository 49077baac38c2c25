package main

import (
	"testing"

	"roulette_bot/internal/model"
	"roulette_bot/internal/service/roulette/wheel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinCmdBet(t *testing.T) {
	n := 17
	tests := []struct {
		name    string
		cmd     SpinCmd
		want    model.Bet
		wantErr bool
	}{
		{"number", SpinCmd{Number: &n}, model.Bet{Type: model.BetTypeNumber, Number: 17}, false},
		{"color", SpinCmd{Color: "black"}, model.Bet{Type: model.BetTypeColor, Color: model.ColorBlack}, false},
		{"zero is not a color", SpinCmd{Color: "zero"}, model.Bet{}, true},
		{"both", SpinCmd{Number: &n, Color: "red"}, model.Bet{}, true},
		{"none", SpinCmd{}, model.Bet{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.bet()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpinCmdRejectsOutOfRangeNumber(t *testing.T) {
	n := 37
	_, err := (&SpinCmd{Number: &n}).bet()
	require.Error(t, err)
}

func TestSpinCmdRun(t *testing.T) {
	n := 5
	require.NoError(t, (&SpinCmd{Stake: 10, Number: &n, Seed: 42}).Run())
	require.Error(t, (&SpinCmd{Stake: 0, Number: &n}).Run())
	require.Error(t, (&SpinCmd{Stake: wheel.MaxStake + 1, Number: &n}).Run())
}
