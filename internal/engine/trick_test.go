package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(s Suit, r Rank) Card { return Card{Suit: s, Rank: r} }

func TestDeckIsThe32CardUniverse(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(7)))
	require.Len(t, deck, DeckSize)
	seen := map[Card]bool{}
	for _, card := range deck {
		require.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
}

func TestTrickWinnerTrumpBeatsLead(t *testing.T) {
	// trump ♥, lead ♠: J♥ beats 8♥ in trump order, both beat any ♠
	trick := &Trick{
		Leader: 0,
		Plays: []PlayedCard{
			{Player: 0, Card: c(SuitSpades, RankTen)},
			{Player: 1, Card: c(SuitHearts, RankJack)},
			{Player: 2, Card: c(SuitSpades, RankAce)},
			{Player: 3, Card: c(SuitHearts, RankEight)},
		},
	}
	assert.Equal(t, 1, trick.WinnerUnder(SuitHearts))
}

func TestTrickWinnerOffSuitCannotWin(t *testing.T) {
	trick := &Trick{
		Leader: 2,
		Plays: []PlayedCard{
			{Player: 2, Card: c(SuitDiamonds, RankSeven)},
			{Player: 3, Card: c(SuitSpades, RankAce)},
			{Player: 0, Card: c(SuitDiamonds, RankKing)},
			{Player: 1, Card: c(SuitClubs, RankAce)},
		},
	}
	// no trump played (trump ♥): only diamonds can win
	assert.Equal(t, 0, trick.WinnerUnder(SuitHearts))
}

func TestTrickWinnerNineAndJackHighTrumps(t *testing.T) {
	trick := &Trick{
		Leader: 0,
		Plays: []PlayedCard{
			{Player: 0, Card: c(SuitClubs, RankAce)},
			{Player: 1, Card: c(SuitClubs, RankNine)},
			{Player: 2, Card: c(SuitClubs, RankJack)},
			{Player: 3, Card: c(SuitClubs, RankTen)},
		},
	}
	assert.Equal(t, 2, trick.WinnerUnder(SuitClubs), "trump jack is the master")
	assert.Equal(t, 1, trick.WinnerUnder(SuitHearts), "plain nine loses to the ace when clubs are not trump")
}

func TestTrickWinnerIsDeterministic(t *testing.T) {
	trick := &Trick{
		Leader: 0,
		Plays: []PlayedCard{
			{Player: 0, Card: c(SuitSpades, RankTen)},
			{Player: 1, Card: c(SuitHearts, RankJack)},
			{Player: 2, Card: c(SuitSpades, RankAce)},
			{Player: 3, Card: c(SuitHearts, RankEight)},
		},
	}
	first := trick.WinnerUnder(SuitHearts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, trick.WinnerUnder(SuitHearts))
	}
}

func TestCardPoints(t *testing.T) {
	cases := []struct {
		card  Card
		trump Suit
		want  int
	}{
		{c(SuitClubs, RankJack), SuitClubs, 20},
		{c(SuitClubs, RankNine), SuitClubs, 14},
		{c(SuitClubs, RankJack), SuitHearts, 2},
		{c(SuitClubs, RankNine), SuitHearts, 0},
		{c(SuitDiamonds, RankAce), SuitHearts, 11},
		{c(SuitDiamonds, RankTen), SuitHearts, 10},
		{c(SuitDiamonds, RankKing), SuitHearts, 4},
		{c(SuitDiamonds, RankQueen), SuitHearts, 3},
		{c(SuitDiamonds, RankSeven), SuitHearts, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CardPoints(tc.card, tc.trump), "%s under trump %s", tc.card, tc.trump)
	}
}

func TestWholeDeckIsWorth152Points(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))
	total := 0
	for _, card := range deck {
		total += CardPoints(card, SuitSpades)
	}
	// 152 card points; the last-trick bonus brings a deal to 162
	assert.Equal(t, 152, total)
}

func TestHighestTrump(t *testing.T) {
	trick := &Trick{
		Leader: 0,
		Plays: []PlayedCard{
			{Player: 0, Card: c(SuitDiamonds, RankAce)},
			{Player: 1, Card: c(SuitClubs, RankNine)},
			{Player: 2, Card: c(SuitClubs, RankKing)},
		},
	}
	hi, ok := trick.HighestTrump(SuitClubs)
	require.True(t, ok)
	assert.Equal(t, 1, hi.Player)
	assert.Equal(t, c(SuitClubs, RankNine), hi.Card)

	_, ok = trick.HighestTrump(SuitSpades)
	assert.False(t, ok)
}
