package blackjack

import (
	"math/rand/v2"
	"testing"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(t *testing.T, name, suit string) Card {
	t.Helper()
	for _, r := range Ranks {
		if r.Name == name {
			return Card{Rank: r, Suit: suit}
		}
	}
	t.Fatalf("unknown rank %q", name)
	return Card{}
}

func hand(t *testing.T, names ...string) Hand {
	t.Helper()
	h := make(Hand, len(names))
	for i, n := range names {
		h[i] = card(t, n, "♠")
	}
	return h
}

func TestNewDeck_52UniqueCards(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewPCG(1, 1)))

	seen := make(map[string]bool)
	for deck.Len() > 0 {
		c, err := deck.Draw()
		require.NoError(t, err)
		require.False(t, seen[c.String()], "duplicate card %s", c)
		seen[c.String()] = true
	}
	assert.Len(t, seen, 52)

	_, err := deck.Draw()
	assert.ErrorIs(t, err, core.ErrEmptyDeck)
}

func TestNewStackedDeck_DealsInOrder(t *testing.T) {
	deck := NewStackedDeck(card(t, "2", "♠"), card(t, "3", "♥"))

	first, err := deck.Draw()
	require.NoError(t, err)
	second, err := deck.Draw()
	require.NoError(t, err)

	assert.Equal(t, "2♠", first.String())
	assert.Equal(t, "3♥", second.String())
}

func TestHand_Value(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		want  int
	}{
		{name: "numbers", cards: []string{"2", "9"}, want: 11},
		{name: "faces", cards: []string{"K", "Q"}, want: 20},
		{name: "soft ace", cards: []string{"A", "6"}, want: 17},
		{name: "natural", cards: []string{"A", "K"}, want: 21},
		{name: "ace drops to one", cards: []string{"A", "9", "5"}, want: 15},
		{name: "two aces", cards: []string{"A", "A"}, want: 12},
		{name: "two aces with ten", cards: []string{"10", "A", "A"}, want: 12},
		{name: "three aces with nine", cards: []string{"9", "A", "A", "A"}, want: 12},
		{name: "four aces", cards: []string{"A", "A", "A", "A"}, want: 14},
		{name: "bust", cards: []string{"K", "Q", "5"}, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hand(t, tt.cards...).Value())
		})
	}
}

// bestValue tries every 1/11 assignment of the aces.
func bestValue(nonAceSum, aces int) int {
	best, minBust := -1, -1
	for mask := 0; mask < 1<<aces; mask++ {
		total := nonAceSum
		for i := range aces {
			if mask&(1<<i) != 0 {
				total += 11
			} else {
				total++
			}
		}
		if total <= 21 && total > best {
			best = total
		}
		if total > 21 && (minBust < 0 || total < minBust) {
			minBust = total
		}
	}
	if best >= 0 {
		return best
	}
	return minBust
}

func TestHandValue_MatchesBruteForce(t *testing.T) {
	for sum := 0; sum <= 30; sum++ {
		for aces := 0; aces <= 4; aces++ {
			got := HandValue(sum, aces)
			assert.Equal(t, bestValue(sum, aces), got, "sum=%d aces=%d", sum, aces)
			assert.GreaterOrEqual(t, got, sum+aces)
			assert.LessOrEqual(t, got, sum+11*aces)
		}
	}
}

func TestNewRound_NaturalWinsImmediately(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "A", "♠"), card(t, "K", "♥"), // player
		card(t, "10", "♦"), card(t, "6", "♣"), // dealer
		card(t, "5", "♠"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)

	assert.True(t, rd.Over())
	assert.Equal(t, Outcome{Winner: WinnerPlayer, Reason: ReasonNatural}, rd.Outcome())
	assert.Len(t, rd.Dealer, 2, "dealer is not played out")
	assert.Equal(t, 1, deck.Len())
	assert.ErrorIs(t, rd.Hit(), core.ErrRoundOver)
	assert.ErrorIs(t, rd.Stand(), core.ErrRoundOver)
}

func TestRound_DealOrder(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "2", "♠"), card(t, "3", "♠"),
		card(t, "4", "♠"), card(t, "5", "♠"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)

	assert.Equal(t, "[2♠, 3♠]", rd.Player.Render(false))
	assert.Equal(t, "[4♠, 5♠]", rd.Dealer.Render(false))
	assert.Equal(t, "[??, 5♠]", rd.Dealer.Render(true))
	assert.Equal(t, StatePlayerTurn, rd.State())
	assert.False(t, rd.DealerRevealed())
}

func TestRound_DealerStandsOnHard17(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "10", "♠"), card(t, "8", "♠"),
		card(t, "10", "♥"), card(t, "7", "♥"),
		card(t, "2", "♣"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	require.NoError(t, rd.Stand())

	assert.Len(t, rd.Dealer, 2)
	assert.Equal(t, 1, deck.Len())
	assert.Equal(t, Outcome{Winner: WinnerPlayer, Reason: ReasonHigher}, rd.Outcome())
}

func TestRound_DealerStandsOnSoft17(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "10", "♠"), card(t, "7", "♠"),
		card(t, "A", "♥"), card(t, "6", "♥"),
		card(t, "4", "♣"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	require.NoError(t, rd.Stand())

	assert.Len(t, rd.Dealer, 2)
	assert.Equal(t, Outcome{Winner: WinnerPush, Reason: ReasonTie}, rd.Outcome())
}

func TestRound_Dealer16HitsOnce(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "10", "♠"), card(t, "9", "♠"),
		card(t, "10", "♥"), card(t, "6", "♥"),
		card(t, "5", "♣"), card(t, "K", "♣"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	require.NoError(t, rd.Stand())

	assert.Len(t, rd.Dealer, 3)
	assert.Equal(t, 21, rd.Dealer.Value())
	assert.Equal(t, 1, deck.Len())
	assert.Equal(t, Outcome{Winner: WinnerDealer, Reason: ReasonHigher}, rd.Outcome())
}

func TestRound_DealerBusts(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "10", "♠"), card(t, "8", "♠"),
		card(t, "10", "♥"), card(t, "6", "♥"),
		card(t, "Q", "♣"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	require.NoError(t, rd.Stand())

	assert.Equal(t, 26, rd.Dealer.Value())
	assert.Equal(t, Outcome{Winner: WinnerPlayer, Reason: ReasonDealerBust}, rd.Outcome())
}

func TestRound_PlayerBustSkipsDealer(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "10", "♠"), card(t, "6", "♠"),
		card(t, "2", "♥"), card(t, "3", "♥"),
		card(t, "K", "♣"), card(t, "9", "♣"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	require.NoError(t, rd.Hit())

	assert.True(t, rd.Over())
	assert.Equal(t, Outcome{Winner: WinnerDealer, Reason: ReasonPlayerBust}, rd.Outcome())
	assert.Len(t, rd.Dealer, 2)
	assert.Equal(t, 1, deck.Len())
}

func TestRound_HitTo21PlaysDealer(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "10", "♠"), card(t, "6", "♠"),
		card(t, "10", "♥"), card(t, "7", "♥"),
		card(t, "5", "♣"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	require.NoError(t, rd.Hit())

	assert.Equal(t, 21, rd.Player.Value())
	assert.Equal(t, Outcome{Winner: WinnerPlayer, Reason: ReasonHigher}, rd.Outcome())
	assert.True(t, rd.DealerRevealed())
}

func TestRound_HitBelow21KeepsTurn(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "2", "♠"), card(t, "3", "♠"),
		card(t, "10", "♥"), card(t, "7", "♥"),
		card(t, "4", "♣"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	require.NoError(t, rd.Play(Hit))

	assert.Equal(t, StatePlayerTurn, rd.State())
	assert.Equal(t, 9, rd.Player.Value())
}

func TestRound_EmptyDeckOnHit(t *testing.T) {
	deck := NewStackedDeck(
		card(t, "2", "♠"), card(t, "3", "♠"),
		card(t, "10", "♥"), card(t, "7", "♥"),
	)

	rd, err := NewRoundWithDeck(deck)
	require.NoError(t, err)
	assert.ErrorIs(t, rd.Hit(), core.ErrEmptyDeck)
}

func TestNewRoundWithDeck_ShortDeck(t *testing.T) {
	_, err := NewRoundWithDeck(NewStackedDeck(card(t, "2", "♠")))
	assert.ErrorIs(t, err, core.ErrEmptyDeck)
}

func TestNewRound_Shuffled(t *testing.T) {
	rd, err := NewRound(rand.New(rand.NewPCG(3, 3)))
	require.NoError(t, err)

	assert.Len(t, rd.Player, 2)
	assert.Len(t, rd.Dealer, 2)
	assert.Equal(t, 48, rd.deck.Len())
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    Choice
		wantErr bool
	}{
		{input: "h", want: Hit},
		{input: "H", want: Hit},
		{input: " s ", want: Stand},
		{input: "S", want: Stand},
		{input: "hit", wantErr: true},
		{input: "", wantErr: true},
		{input: "x", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseChoice(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, core.ErrInvalidSelection, "input %q", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
