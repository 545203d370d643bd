package blackjack

import (
	"strings"

	"github.com/sandevgo/fakenews/internal/core"
)

// Rank is a card rank with its base blackjack value.
type Rank struct {
	Name  string
	Value int
}

// IsAce reports whether the rank is counted as 11 or 1.
func (r Rank) IsAce() bool {
	return r.Name == "A"
}

// Ranks lists the 13 ranks, aces valued 11.
var Ranks = []Rank{
	{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7}, {"8", 8},
	{"9", 9}, {"10", 10}, {"J", 10}, {"Q", 10}, {"K", 10}, {"A", 11},
}

// Suits lists the four suit symbols.
var Suits = []string{"♠", "♥", "♦", "♣"}

// Card is one playing card.
type Card struct {
	Rank Rank
	Suit string
}

func (c Card) String() string {
	return c.Rank.Name + c.Suit
}

// Deck is a draw pile. The top card is the last element.
type Deck struct {
	cards []Card
}

func NewDeck() *Deck {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// NewStackedDeck returns a deck that deals cards in the given order.
func NewStackedDeck(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	for i, c := range cards {
		stacked[len(cards)-1-i] = c
	}
	return &Deck{cards: stacked}
}

// Shuffle is a Fisher-Yates shuffle.
func (d *Deck) Shuffle(r core.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, core.ErrEmptyDeck
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Hand is the cards held by the player or the dealer.
type Hand []Card

// HandValue resolves aces one at a time: 11 while the total, with every
// ace still to come counted as 1, stays at or under 21, otherwise 1.
func HandValue(nonAceSum, aces int) int {
	total := nonAceSum
	for i := range aces {
		rest := aces - i - 1
		if total+11+rest <= 21 {
			total += 11
		} else {
			total++
		}
	}
	return total
}

func (h Hand) Value() int {
	sum, aces := 0, 0
	for _, c := range h {
		if c.Rank.IsAce() {
			aces++
			continue
		}
		sum += c.Rank.Value
	}
	return HandValue(sum, aces)
}

// Render prints the hand. With hideFirst the first card is masked, the
// way the dealer's hole card is shown during the player's turn.
func (h Hand) Render(hideFirst bool) string {
	parts := make([]string, len(h))
	for i, c := range h {
		if i == 0 && hideFirst {
			parts[i] = "??"
			continue
		}
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
