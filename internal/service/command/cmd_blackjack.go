package command

import (
	"context"
	"errors"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/blackjack"
	"github.com/sandevgo/fakenews/pkg/log"
)

// Dealer starts a new round. Tests swap it for stacked decks.
type Dealer func() (*blackjack.Round, error)

func ShuffledDealer(r core.Rand) Dealer {
	return func() (*blackjack.Round, error) {
		return blackjack.NewRound(r)
	}
}

type BlackjackCommand struct {
	deal      Dealer
	formatter *ResponseFormatter
}

func NewBlackjackCommand(deal Dealer) *BlackjackCommand {
	return &BlackjackCommand{
		deal:      deal,
		formatter: NewResponseFormatter(),
	}
}

func (c *BlackjackCommand) Name() string {
	return "blackjack"
}

func (c *BlackjackCommand) Description() string {
	return "Blackjack"
}

func (c *BlackjackCommand) Play(ctx context.Context, console core.Console) error {
	for {
		if err := checkCtx(ctx); err != nil {
			return err
		}

		if err := c.playRound(ctx, console); err != nil {
			return err
		}

		again, err := askYesNo(ctx, console, c.formatter, "\nDo you want to play again")
		if err != nil || !again {
			return err
		}
	}
}

func (c *BlackjackCommand) playRound(ctx context.Context, console core.Console) error {
	logger := log.FromCtx(ctx)

	rd, err := c.deal()
	if err != nil {
		return err
	}
	console.Print(c.formatter.Combine("\n", c.formatter.Title("Blackjack"), c.formatter.Table(rd)))

	for rd.State() == blackjack.StatePlayerTurn {
		input, err := console.Ask(ctx, "Hit or Stand (h/s)? ")
		if err != nil {
			return err
		}
		choice, err := blackjack.ParseChoice(input)
		if errors.Is(err, core.ErrInvalidSelection) {
			console.Print(c.formatter.Error("Please enter 'h' to hit or 's' to stand."))
			continue
		}
		if err := rd.Play(choice); err != nil {
			return err
		}
		if rd.State() == blackjack.StatePlayerTurn {
			console.Print(c.formatter.Hand("Your hand", rd.Player, false))
		}
	}

	console.Print(c.formatter.Combine("\n", c.formatter.Table(rd), c.formatter.Outcome(rd.Outcome())))
	logger.Debug().
		Int("player", rd.Player.Value()).
		Int("dealer", rd.Dealer.Value()).
		Str("reason", string(rd.Outcome().Reason)).
		Msg("blackjack round over")
	return nil
}
