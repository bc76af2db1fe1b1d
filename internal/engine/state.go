package engine

import (
	"errors"
	"math/rand"
)

var (
	ErrNotPlayersTurn  = errors.New("not your turn")
	ErrNotBidding      = errors.New("bidding is over")
	ErrSuitRequired    = errors.New("second-round take requires a suit")
	ErrSuitWasTurned   = errors.New("cannot take the turned suit in the second round")
	ErrNoBelote        = errors.New("you were not dealt the trump king and queen")
	ErrNotBeloteHolder = errors.New("only the belote holder may announce rebelote")
	ErrBeloteCardsGone = errors.New("the belote cards have already left your hand")
	ErrBeloteComplete  = errors.New("belote and rebelote already announced")
	ErrDealNotFinished = errors.New("the deal is not finished")
)

// TargetScore is the conventional match target. The engine reports it via
// MatchOver but Finished stays the terminal per-deal phase.
const TargetScore = 1001

// DealState is the full per-deal datum. Commands (Bid, Play,
// AnnounceBelote) validate completely before mutating, so a rejected
// command never changes state.
type DealState struct {
	Phase   Phase
	Dealer  int
	Current int

	Deck  []Card
	Hands [4][]Card
	dealt [4][]Card // hands as they stood after the second deal

	TurnedCard    *Card
	ProposedTrump Suit

	Trump        Suit
	TrumpChosen  bool
	TrumpChooser int

	Bidder int
	Passes int

	Trick        *Trick
	TrickHistory []*Trick

	DealScores  [2]int
	MatchScores [2]int
	DealNumber  int

	Belote Belote

	rng *rand.Rand
}

// NewDeal shuffles, deals five cards to each player starting left of the
// dealer, and turns the next card face up to open the first bidding round.
func NewDeal(dealer int, r *rand.Rand) *DealState {
	d := &DealState{
		Phase:        PhaseBiddingFirst,
		Dealer:       dealer,
		Bidder:       (dealer + 1) % 4,
		TrumpChooser: -1,
		DealNumber:   1,
		Belote:       Belote{Holder: -1, Team: -1},
		rng:          r,
	}
	d.dealFive()
	return d
}

func (d *DealState) dealFive() {
	deck := NewDeck(d.rng)
	for i := 0; i < 4; i++ {
		p := (d.Dealer + 1 + i) % 4
		d.Hands[p] = append([]Card{}, deck[:5]...)
		deck = deck[5:]
	}
	turned := deck[0]
	d.Deck = deck[1:]
	d.TurnedCard = &turned
	d.ProposedTrump = turned.Suit
	d.Current = d.Bidder
}

// redeal restarts the deal in place after four second-round passes: fresh
// shuffle, same dealer, match scores preserved.
func (d *DealState) redeal() {
	nd := NewDeal(d.Dealer, d.rng)
	nd.MatchScores = d.MatchScores
	nd.DealNumber = d.DealNumber
	*d = *nd
}

// NextDeal starts the following deal of the match: dealer rotates one seat
// and match scores carry over. Only valid once the current deal finished.
func (d *DealState) NextDeal() (*DealState, error) {
	if d.Phase != PhaseFinished {
		return nil, ErrDealNotFinished
	}
	nd := NewDeal((d.Dealer+1)%4, d.rng)
	nd.MatchScores = d.MatchScores
	nd.DealNumber = d.DealNumber + 1
	return nd, nil
}

// MatchOver reports whether either team has reached the match target.
func (d *DealState) MatchOver() bool {
	return d.MatchScores[0] >= TargetScore || d.MatchScores[1] >= TargetScore
}

// Bid handles a take or pass from player p. In the first round suit is
// ignored (the turned card's suit is at stake); in the second round a take
// must name a suit other than the turned one. Four first-round passes move
// to the second round, four second-round passes redeal with the same
// dealer.
func (d *DealState) Bid(p int, take bool, suit *Suit) error {
	if d.Phase != PhaseBiddingFirst && d.Phase != PhaseBiddingSecond {
		return ErrNotBidding
	}
	if d.Bidder != p {
		return ErrNotPlayersTurn
	}

	if !take {
		if d.Passes+1 < 4 {
			d.Passes++
			d.Bidder = (p + 1) % 4
			d.Current = d.Bidder
			return nil
		}
		if d.Phase == PhaseBiddingFirst {
			d.Phase = PhaseBiddingSecond
			d.Passes = 0
			d.Bidder = (d.Dealer + 1) % 4
			d.Current = d.Bidder
			return nil
		}
		d.redeal()
		return nil
	}

	trump := d.ProposedTrump
	if d.Phase == PhaseBiddingSecond {
		if suit == nil {
			return ErrSuitRequired
		}
		if *suit == d.ProposedTrump {
			return ErrSuitWasTurned
		}
		trump = *suit
	}

	d.Trump = trump
	d.TrumpChosen = true
	d.TrumpChooser = p
	d.secondDeal(p)
	d.Phase = PhasePlaying
	d.Bidder = -1
	d.Passes = 0
	// the player left of the dealer leads the first trick
	d.Current = (d.Dealer + 1) % 4
	return nil
}

// secondDeal gives the turned card to the taker, then tops every hand up
// to eight in dealer-relative order. The taker draws two more, everyone
// else three; the deck empties exactly.
func (d *DealState) secondDeal(taker int) {
	d.Hands[taker] = append(d.Hands[taker], *d.TurnedCard)
	d.TurnedCard = nil
	for i := 0; i < 4; i++ {
		p := (d.Dealer + 1 + i) % 4
		for len(d.Hands[p]) < 8 {
			d.Hands[p] = append(d.Hands[p], d.Deck[0])
			d.Deck = d.Deck[1:]
		}
	}
	for p := 0; p < 4; p++ {
		d.dealt[p] = append([]Card{}, d.Hands[p]...)
	}
}

// Play removes card c from p's hand and advances the trick. On the fourth
// card the winner is resolved, takes the points and leads the next trick;
// after the eighth trick the deal finishes with the last-trick bonus and
// scores merged into the match totals.
func (d *DealState) Play(p int, c Card) error {
	if d.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	if d.Current != p {
		return ErrNotPlayersTurn
	}
	if err := CheckPlay(d, p, c); err != nil {
		return err
	}

	d.Hands[p] = removeCard(d.Hands[p], c)
	if d.Trick == nil || d.Trick.IsComplete() {
		if d.Trick != nil {
			d.TrickHistory = append(d.TrickHistory, d.Trick)
		}
		d.Trick = newTrick(p)
	}
	d.Trick.Plays = append(d.Trick.Plays, PlayedCard{Player: p, Card: c})

	if !d.Trick.IsComplete() {
		d.Current = (p + 1) % 4
		return nil
	}

	w := d.Trick.WinnerUnder(d.Trump)
	d.Trick.Winner = w
	d.Current = w
	d.DealScores[TeamOf(w)] += d.Trick.Points(d.Trump)

	if len(d.Hands[0]) == 0 && len(d.Hands[1]) == 0 && len(d.Hands[2]) == 0 && len(d.Hands[3]) == 0 {
		d.DealScores[TeamOf(w)] += LastTrickBonus
		d.MatchScores[0] += d.DealScores[0]
		d.MatchScores[1] += d.DealScores[1]
		// belote is credited to the match outside the 162 deal points
		if d.Belote.Stage == 2 {
			d.MatchScores[d.Belote.Team] += d.Belote.Points
		}
		d.Phase = PhaseFinished
	}
	return nil
}

// AnnounceBelote registers belote (stage 1) or rebelote (stage 2) for
// player p. The announcement is only honored if the trump king and queen
// were both in p's dealt cards; rebelote only by the same player, and only
// while the remaining card of the pair is still in hand or on the table in
// the current trick.
func (d *DealState) AnnounceBelote(p int) error {
	if d.Phase != PhasePlaying || !d.TrumpChosen {
		return ErrWrongPhase
	}
	switch d.Belote.Stage {
	case 0:
		if !dealtBelote(d.dealt[p], d.Trump) {
			return ErrNoBelote
		}
		d.Belote = Belote{Holder: p, Stage: 1, Points: BelotePoints, Team: TeamOf(p)}
		return nil
	case 1:
		if d.Belote.Holder != p {
			return ErrNotBeloteHolder
		}
		if !d.holdsBeloteCard(p) {
			return ErrBeloteCardsGone
		}
		d.Belote.Stage = 2
		return nil
	default:
		return ErrBeloteComplete
	}
}

func dealtBelote(dealt []Card, trump Suit) bool {
	return handContains(dealt, Card{Suit: trump, Rank: RankKing}) &&
		handContains(dealt, Card{Suit: trump, Rank: RankQueen})
}

// holdsBeloteCard reports whether player p still has a trump king or queen
// in hand, or just put one down in the current trick.
func (d *DealState) holdsBeloteCard(p int) bool {
	for _, r := range []Rank{RankKing, RankQueen} {
		if handContains(d.Hands[p], Card{Suit: d.Trump, Rank: r}) {
			return true
		}
	}
	if d.Trick == nil {
		return false
	}
	for _, pc := range d.Trick.Plays {
		if pc.Player == p && pc.Card.Suit == d.Trump &&
			(pc.Card.Rank == RankKing || pc.Card.Rank == RankQueen) {
			return true
		}
	}
	return false
}

// PlayedCount returns how many cards player p has played this deal.
func (d *DealState) PlayedCount(p int) int {
	n := 0
	for _, t := range d.TrickHistory {
		for _, pc := range t.Plays {
			if pc.Player == p {
				n++
			}
		}
	}
	if d.Trick != nil {
		for _, pc := range d.Trick.Plays {
			if pc.Player == p {
				n++
			}
		}
	}
	return n
}
