package converter

import (
	dto "roulette_bot/internal/api/dto/roulette"
	"roulette_bot/internal/model"
)

// ToEvent собирает доменное событие из запроса, прошедшего валидацию
func ToEvent(sessionID string, req dto.EventRequest) model.Event {
	kind, _ := model.ParseEventKind(req.Kind)
	ev := model.Event{
		SessionID: sessionID,
		Kind:      kind,
	}
	if req.Stake != nil {
		ev.Stake = *req.Stake
	}
	if req.Target != nil {
		ev.Target = toBet(*req.Target)
	}
	return ev
}

func toBet(req dto.TargetRequest) model.Bet {
	switch req.Kind {
	case "number":
		bet := model.Bet{Type: model.BetTypeNumber}
		if req.Number != nil {
			bet.Number = *req.Number
		}
		return bet
	case "color":
		// Неизвестный цвет остаётся ColorNone и отклоняется машиной состояний
		color, _ := model.ParseColor(req.Color)
		return model.Bet{Type: model.BetTypeColor, Color: color}
	default:
		return model.Bet{}
	}
}

func ToDirectiveResponse(d *model.Directive) *dto.DirectiveResponse {
	if d == nil {
		return nil
	}

	options := make([]dto.OptionResponse, len(d.Options))
	for i, o := range d.Options {
		options[i] = dto.OptionResponse{
			Label: o.Label,
			Row:   o.Row,
			Event: ToEventRequest(o.Event),
		}
	}

	resp := &dto.DirectiveResponse{
		Text:      d.Text,
		NextStage: d.NextStage.String(),
		Options:   options,
	}
	if o := d.Outcome; o != nil {
		resp.Outcome = &dto.OutcomeResponse{
			RoundID: o.RoundID,
			Number:  o.Number,
			Color:   o.Color.String(),
			Payout:  o.Payout,
			Stake:   o.Stake,
			Bet:     toTargetRequest(o.Bet),
		}
	}
	return resp
}

// ToEventRequest обратное к ToEvent: событие в виде, который мост пришлёт назад
func ToEventRequest(ev model.Event) dto.EventRequest {
	req := dto.EventRequest{Kind: ev.Kind.String()}
	switch ev.Kind {
	case model.EventSelectStake:
		stake := ev.Stake
		req.Stake = &stake
	case model.EventSelectTarget:
		target := toTargetRequest(ev.Target)
		req.Target = &target
	}
	return req
}

func toTargetRequest(bet model.Bet) dto.TargetRequest {
	if bet.Type == model.BetTypeColor {
		return dto.TargetRequest{Kind: "color", Color: bet.Color.String()}
	}
	n := bet.Number
	return dto.TargetRequest{Kind: "number", Number: &n}
}

func ToSessionResponse(s model.Session) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:    s.ID,
		Stage: s.Stage.String(),
		Stake: s.Stake,
	}
	if s.Bet != nil {
		bet := toTargetRequest(*s.Bet)
		resp.Bet = &bet
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

func ToStatsResponse(s model.Stats) dto.StatsResponse {
	alerts := make([]dto.AlertResponse, len(s.Alerts))
	for i, a := range s.Alerts {
		alerts[i] = dto.AlertResponse{At: a.At, WindowRTP: a.WindowRTP, Profit: a.Profit}
	}

	return dto.StatsResponse{
		TotalSpins:  s.TotalSpins,
		TotalStake:  s.TotalStake,
		TotalPayout: s.TotalPayout,
		CurrentRTP:  s.CurrentRTP,
		WindowSize:  s.WindowSize,
		WindowSpins: s.WindowSpins,
		WindowRTP:   s.WindowRTP,
		Deviating:   s.Deviating,
		Alerts:      alerts,
	}
}
