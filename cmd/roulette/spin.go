package main

import (
	"errors"
	"fmt"

	"roulette_bot/internal/model"
	"roulette_bot/internal/service/roulette/wheel"
)

type SpinCmd struct {
	Stake  int    `kong:"required,help='Stake amount'"`
	Number *int   `kong:"help='Bet on a number 0-36'"`
	Color  string `kong:"help='Bet on a color: red or black'"`
	Seed   uint64 `kong:"help='Deterministic seed (0 means random)'"`
}

func (c *SpinCmd) Run() error {
	bet, err := c.bet()
	if err != nil {
		return err
	}
	if c.Stake <= 0 {
		return errors.New("stake must be positive")
	}
	if c.Stake > wheel.MaxStake {
		return fmt.Errorf("stake must not exceed %d", wheel.MaxStake)
	}

	outcome := wheel.New(wheel.NewSource(c.Seed)).Resolve(c.Stake, bet)

	fmt.Printf("number: %d (%s)\n", outcome.Number, outcome.Color)
	fmt.Printf("bet:    %s, stake %d\n", outcome.Bet, outcome.Stake)
	if outcome.Won() {
		fmt.Printf("won:    %d\n", outcome.Payout)
	} else {
		fmt.Println("lost")
	}
	return nil
}

func (c *SpinCmd) bet() (model.Bet, error) {
	switch {
	case c.Number != nil && c.Color != "":
		return model.Bet{}, errors.New("--number and --color are mutually exclusive")
	case c.Number != nil:
		if !wheel.ValidNumber(*c.Number) {
			return model.Bet{}, fmt.Errorf("number must be between 0 and %d", wheel.MaxNumber)
		}
		return model.Bet{Type: model.BetTypeNumber, Number: *c.Number}, nil
	case c.Color != "":
		color, ok := model.ParseColor(c.Color)
		if !ok {
			return model.Bet{}, fmt.Errorf("unknown color %q", c.Color)
		}
		return model.Bet{Type: model.BetTypeColor, Color: color}, nil
	default:
		return model.Bet{}, errors.New("either --number or --color is required")
	}
}
