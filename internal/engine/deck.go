package engine

import "math/rand"

// DeckSize is the full belote deck: 4 suits x 8 ranks, seven through ace.
const DeckSize = 32

// NewDeck enumerates the 32-card universe in a fixed order and shuffles it
// with the caller's random source, so deals are reproducible in tests.
func NewDeck(r *rand.Rand) []Card {
	deck := make([]Card, 0, DeckSize)
	for s := SuitClubs; s <= SuitSpades; s++ {
		for rnk := RankSeven; rnk <= RankAce; rnk++ {
			deck = append(deck, Card{Suit: s, Rank: rnk})
		}
	}
	// Fisher-Yates
	for i := len(deck) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}
