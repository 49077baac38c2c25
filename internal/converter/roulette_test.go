package converter

import (
	"testing"
	"time"

	dto "roulette_bot/internal/api/dto/roulette"
	"roulette_bot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestToEvent(t *testing.T) {
	tests := []struct {
		name string
		req  dto.EventRequest
		want model.Event
	}{
		{
			name: "stake",
			req:  dto.EventRequest{Kind: "stake", Stake: intPtr(50)},
			want: model.Event{SessionID: "s", Kind: model.EventSelectStake, Stake: 50},
		},
		{
			name: "number target zero",
			req:  dto.EventRequest{Kind: "target", Target: &dto.TargetRequest{Kind: "number", Number: intPtr(0)}},
			want: model.Event{SessionID: "s", Kind: model.EventSelectTarget, Target: model.Bet{Type: model.BetTypeNumber}},
		},
		{
			name: "color target",
			req:  dto.EventRequest{Kind: "target", Target: &dto.TargetRequest{Kind: "color", Color: "black"}},
			want: model.Event{SessionID: "s", Kind: model.EventSelectTarget, Target: model.Bet{Type: model.BetTypeColor, Color: model.ColorBlack}},
		},
		{
			name: "unknown color stays empty",
			req:  dto.EventRequest{Kind: "target", Target: &dto.TargetRequest{Kind: "color", Color: "green"}},
			want: model.Event{SessionID: "s", Kind: model.EventSelectTarget, Target: model.Bet{Type: model.BetTypeColor}},
		},
		{
			name: "spin",
			req:  dto.EventRequest{Kind: "spin"},
			want: model.Event{SessionID: "s", Kind: model.EventSpin},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToEvent("s", tt.req))
		})
	}
}

func TestOptionEventsRoundTrip(t *testing.T) {
	events := []model.Event{
		{Kind: model.EventStart},
		{Kind: model.EventSelectStake, Stake: 100},
		{Kind: model.EventSelectTarget, Target: model.Bet{Type: model.BetTypeNumber, Number: 36}},
		{Kind: model.EventSelectTarget, Target: model.Bet{Type: model.BetTypeColor, Color: model.ColorRed}},
		{Kind: model.EventCancel},
	}
	for _, ev := range events {
		ev.SessionID = "s"
		assert.Equal(t, ev, ToEvent("s", ToEventRequest(ev)))
	}
}

func TestToDirectiveResponseWithOutcome(t *testing.T) {
	d := &model.Directive{
		Text:      "done",
		NextStage: model.StageIdle,
		Options:   []model.Option{{Label: "again", Event: model.Event{Kind: model.EventStart}}},
		Outcome: &model.SpinOutcome{
			RoundID: "r1",
			Number:  17,
			Color:   model.ColorBlack,
			Payout:  1800,
			Stake:   50,
			Bet:     model.Bet{Type: model.BetTypeNumber, Number: 17},
		},
	}

	resp := ToDirectiveResponse(d)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, "idle", resp.NextStage)
	assert.Equal(t, "black", resp.Outcome.Color)
	assert.Equal(t, 17, *resp.Outcome.Bet.Number)
	assert.Equal(t, "start", resp.Options[0].Event.Kind)
	assert.Nil(t, ToDirectiveResponse(nil))
}

func TestToSessionResponse(t *testing.T) {
	resp := ToSessionResponse(model.Session{
		ID:    "s",
		Stage: model.StageReadyToSpin,
		Stake: 10,
		Bet:   &model.Bet{Type: model.BetTypeColor, Color: model.ColorRed},
	})

	assert.Equal(t, "ready_to_spin", resp.Stage)
	require.NotNil(t, resp.Bet)
	assert.Equal(t, "red", resp.Bet.Color)
	assert.Nil(t, resp.UpdatedAt)
}

func TestToStatsResponseCarriesAlerts(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := ToStatsResponse(model.Stats{
		TotalSpins: 500,
		WindowSize: 500,
		Deviating:  true,
		Alerts:     []model.RTPAlert{{At: at, WindowRTP: 80.5, Profit: 1200}},
	})

	assert.True(t, resp.Deviating)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, dto.AlertResponse{At: at, WindowRTP: 80.5, Profit: 1200}, resp.Alerts[0])

	empty := ToStatsResponse(model.Stats{})
	assert.NotNil(t, empty.Alerts, "alerts render as [] rather than null")
	assert.Empty(t, empty.Alerts)
}
