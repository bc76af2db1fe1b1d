package room

import (
	"beloted/internal/engine"
	"beloted/internal/protocol"
)

// buildStateView serializes a deal for one recipient seat: their full
// hand, card counts for the other seats, and the bidding/trick context
// relevant to the current phase.
func buildStateView(d *engine.DealState, seat int) protocol.StateView {
	v := protocol.StateView{
		Phase:         d.Phase.String(),
		Dealer:        d.Dealer,
		CurrentPlayer: d.Current,
		DealNumber:    d.DealNumber,
		YourSeat:      seat,
		Hand:          append([]engine.Card{}, d.Hands[seat]...),
		DealScores:    d.DealScores,
		MatchScores:   d.MatchScores,
		Belote:        protocol.BeloteView{Stage: d.Belote.Stage, Points: d.Belote.Points},
	}
	for p := 0; p < 4; p++ {
		v.HandCounts[p] = len(d.Hands[p])
	}
	if d.TurnedCard != nil {
		turned := *d.TurnedCard
		proposed := d.ProposedTrump
		v.TurnedCard = &turned
		v.ProposedTrump = &proposed
	}
	if d.TrumpChosen {
		trump := d.Trump
		chooser := d.TrumpChooser
		v.Trump = &trump
		v.TrumpChooser = &chooser
	}
	if d.Phase == engine.PhaseBiddingFirst || d.Phase == engine.PhaseBiddingSecond {
		bidder := d.Bidder
		v.Bidder = &bidder
	}
	if d.Trick != nil {
		tv := protocol.TrickView{
			Plays:  append([]engine.PlayedCard{}, d.Trick.Plays...),
			Leader: d.Trick.Leader,
		}
		if d.Trick.IsComplete() {
			w := d.Trick.Winner
			tv.Winner = &w
		}
		v.Trick = &tv
	}
	if d.Belote.Stage >= 1 {
		holder := d.Belote.Holder
		team := d.Belote.Team
		v.Belote.Holder = &holder
		v.Belote.Team = &team
	}
	return v
}
