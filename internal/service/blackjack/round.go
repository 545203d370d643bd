// Package blackjack plays a single-deck, single-player round against a
// dealer that stands on any 17.
package blackjack

import (
	"fmt"
	"strings"

	"github.com/sandevgo/fakenews/internal/core"
)

const (
	Blackjack       = 21
	dealerStandsOn  = 17
	initialHandSize = 2
)

type State int

const (
	StateDealing State = iota
	StatePlayerTurn
	StateDealerTurn
	StateRoundOver
)

func (s State) String() string {
	switch s {
	case StateDealing:
		return "dealing"
	case StatePlayerTurn:
		return "player_turn"
	case StateDealerTurn:
		return "dealer_turn"
	case StateRoundOver:
		return "round_over"
	}
	return "unknown"
}

type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerDealer
	WinnerPush
)

// Reason tells how the round was decided.
type Reason string

const (
	ReasonNatural    Reason = "natural"
	ReasonPlayerBust Reason = "player_bust"
	ReasonDealerBust Reason = "dealer_bust"
	ReasonHigher     Reason = "higher_total"
	ReasonTie        Reason = "tie"
)

type Outcome struct {
	Winner Winner
	Reason Reason
}

type Choice int

const (
	Hit Choice = iota
	Stand
)

// ParseChoice accepts "h" or "s" in any case.
func ParseChoice(input string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "h":
		return Hit, nil
	case "s":
		return Stand, nil
	}
	return 0, fmt.Errorf("choice %q: %w", input, core.ErrInvalidSelection)
}

// Round owns its deck and both hands. It is not reused.
type Round struct {
	deck    *Deck
	Player  Hand
	Dealer  Hand
	state   State
	outcome Outcome
}

// NewRound shuffles a fresh 52-card deck and deals.
func NewRound(r core.Rand) (*Round, error) {
	deck := NewDeck()
	deck.Shuffle(r)
	return NewRoundWithDeck(deck)
}

// NewRoundWithDeck deals player, player, dealer, dealer from deck. A
// natural blackjack ends the round right away.
func NewRoundWithDeck(deck *Deck) (*Round, error) {
	rd := &Round{deck: deck, state: StateDealing}

	for range initialHandSize {
		c, err := deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("deal player: %w", err)
		}
		rd.Player = append(rd.Player, c)
	}
	for range initialHandSize {
		c, err := deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("deal dealer: %w", err)
		}
		rd.Dealer = append(rd.Dealer, c)
	}

	if rd.Player.Value() == Blackjack {
		rd.finish(WinnerPlayer, ReasonNatural)
		return rd, nil
	}
	rd.state = StatePlayerTurn
	return rd, nil
}

func (rd *Round) State() State {
	return rd.state
}

func (rd *Round) Outcome() Outcome {
	return rd.outcome
}

func (rd *Round) Over() bool {
	return rd.state == StateRoundOver
}

// Play applies a player choice.
func (rd *Round) Play(c Choice) error {
	if c == Hit {
		return rd.Hit()
	}
	return rd.Stand()
}

// Hit draws a card for the player. Going over 21 loses the round, landing
// on exactly 21 hands the turn to the dealer.
func (rd *Round) Hit() error {
	if rd.state != StatePlayerTurn {
		return core.ErrRoundOver
	}

	c, err := rd.deck.Draw()
	if err != nil {
		return fmt.Errorf("player hit: %w", err)
	}
	rd.Player = append(rd.Player, c)

	switch v := rd.Player.Value(); {
	case v > Blackjack:
		rd.finish(WinnerDealer, ReasonPlayerBust)
		return nil
	case v == Blackjack:
		return rd.dealerTurn()
	}
	return nil
}

func (rd *Round) Stand() error {
	if rd.state != StatePlayerTurn {
		return core.ErrRoundOver
	}
	return rd.dealerTurn()
}

func (rd *Round) dealerTurn() error {
	rd.state = StateDealerTurn

	for rd.Dealer.Value() < dealerStandsOn {
		c, err := rd.deck.Draw()
		if err != nil {
			return fmt.Errorf("dealer hit: %w", err)
		}
		rd.Dealer = append(rd.Dealer, c)
	}

	player, dealer := rd.Player.Value(), rd.Dealer.Value()
	switch {
	case dealer > Blackjack:
		rd.finish(WinnerPlayer, ReasonDealerBust)
	case player > dealer:
		rd.finish(WinnerPlayer, ReasonHigher)
	case dealer > player:
		rd.finish(WinnerDealer, ReasonHigher)
	default:
		rd.finish(WinnerPush, ReasonTie)
	}
	return nil
}

func (rd *Round) finish(w Winner, r Reason) {
	rd.state = StateRoundOver
	rd.outcome = Outcome{Winner: w, Reason: r}
}

// DealerRevealed reports whether the dealer's hole card may be shown.
func (rd *Round) DealerRevealed() bool {
	return rd.state == StateDealerTurn || rd.state == StateRoundOver
}
