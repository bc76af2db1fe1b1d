package engine

// Rank orderings and point tables, indexed by Rank (7..14).
// Non-trump: 7 < 8 < 9 < J < Q < K < 10 < A
// Trump:     7 < 8 < Q < K < 10 < A < 9 < J

var plainOrder = [15]int{
	RankSeven: 0, RankEight: 1, RankNine: 2, RankJack: 3,
	RankQueen: 4, RankKing: 5, RankTen: 6, RankAce: 7,
}

var trumpOrder = [15]int{
	RankSeven: 0, RankEight: 1, RankQueen: 2, RankKing: 3,
	RankTen: 4, RankAce: 5, RankNine: 6, RankJack: 7,
}

var plainPoints = [15]int{
	RankJack: 2, RankQueen: 3, RankKing: 4, RankTen: 10, RankAce: 11,
}

var trumpPoints = [15]int{
	RankNine: 14, RankJack: 20, RankQueen: 3, RankKing: 4, RankTen: 10, RankAce: 11,
}

// LastTrickBonus ("dix de der") goes to the team winning the eighth trick.
const LastTrickBonus = 10

// BelotePoints is the trump K+Q declaration bonus.
const BelotePoints = 20

func trumpStrength(r Rank) int { return trumpOrder[r] }

// CardPoints returns the point value of a card under the given trump suit.
func CardPoints(c Card, trump Suit) int {
	if c.Suit == trump {
		return trumpPoints[c.Rank]
	}
	return plainPoints[c.Rank]
}

func newTrick(leader int) *Trick {
	return &Trick{Plays: make([]PlayedCard, 0, 4), Leader: leader, Winner: -1}
}

func (t *Trick) IsComplete() bool { return len(t.Plays) == 4 }

// LeadSuit returns the suit of the first card played; ok is false on an
// empty trick.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// power ranks a card's trick-taking strength: any trump beats any
// non-trump, a non-trump off the lead suit cannot win at all.
func power(c Card, lead, trump Suit) int {
	if c.Suit == trump {
		return 100 + trumpOrder[c.Rank]
	}
	if c.Suit == lead {
		return plainOrder[c.Rank]
	}
	return -1
}

// WinnerUnder returns the seat currently winning the trick under trump,
// as if the trick were finalized now. Returns -1 on an empty trick.
func (t *Trick) WinnerUnder(trump Suit) int {
	if len(t.Plays) == 0 {
		return -1
	}
	lead := t.Plays[0].Card.Suit
	best := t.Plays[0]
	bestPower := power(best.Card, lead, trump)
	for _, pc := range t.Plays[1:] {
		if p := power(pc.Card, lead, trump); p > bestPower {
			best, bestPower = pc, p
		}
	}
	return best.Player
}

// HighestTrump returns the strongest trump played so far, if any.
func (t *Trick) HighestTrump(trump Suit) (PlayedCard, bool) {
	var best PlayedCard
	found := false
	for _, pc := range t.Plays {
		if pc.Card.Suit != trump {
			continue
		}
		if !found || trumpOrder[pc.Card.Rank] > trumpOrder[best.Card.Rank] {
			best, found = pc, true
		}
	}
	return best, found
}

// Points sums the card points in the trick under the given trump suit.
func (t *Trick) Points(trump Suit) int {
	total := 0
	for _, pc := range t.Plays {
		total += CardPoints(pc.Card, trump)
	}
	return total
}
