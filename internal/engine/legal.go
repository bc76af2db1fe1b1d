package engine

import "errors"

var (
	ErrWrongPhase     = errors.New("no trick is being played")
	ErrNotInHand      = errors.New("card is not in your hand")
	ErrMustFollowSuit = errors.New("must follow the lead suit")
	ErrMustTrump      = errors.New("must play a trump")
	ErrMustOvertrump  = errors.New("must play a trump higher than the current one")
	ErrMustUndertrump = errors.New("must still play a trump")
)

// CheckPlay decides whether player p may play card c in the current trick.
// It is pure: it never mutates the deal state.
//
// The cascade, in order:
//  1. following the lead suit is legal, except that a led trump must be
//     overtrumped when possible and an opponent holds the trick
//  2. holding the lead suit forbids anything else
//  3. void in lead and in trump: free discard
//  4. void in lead, holding trump, no trump down yet: free when the
//     partner is master, otherwise the trick must be cut
//  5. void in lead, holding trump, trump already down: free over the
//     partner's trump, otherwise overtrump when possible, and failing
//     that still play a trump under it
func CheckPlay(d *DealState, p int, c Card) error {
	if d.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	hand := d.Hands[p]
	if !handContains(hand, c) {
		return ErrNotInHand
	}
	t := d.Trick
	if t == nil || len(t.Plays) == 0 || t.IsComplete() {
		return nil // leading: any card
	}

	lead, _ := t.LeadSuit()
	trump := d.Trump
	partnerMaster := sameTeam(t.WinnerUnder(trump), p)

	if c.Suit == lead {
		if lead != trump {
			return nil
		}
		// trump was led: no forced overtrump over the partner
		if partnerMaster {
			return nil
		}
		hi, _ := t.HighestTrump(trump)
		if canOvertrump(hand, trump, hi.Card) && trumpStrength(c.Rank) <= trumpStrength(hi.Card.Rank) {
			return ErrMustOvertrump
		}
		return nil
	}

	if hasSuit(hand, lead) {
		return ErrMustFollowSuit
	}
	if !hasSuit(hand, trump) {
		return nil // free discard
	}

	hi, trumped := t.HighestTrump(trump)
	if !trumped {
		if partnerMaster {
			return nil
		}
		if c.Suit != trump {
			return ErrMustTrump
		}
		return nil
	}
	if sameTeam(hi.Player, p) {
		return nil
	}
	if canOvertrump(hand, trump, hi.Card) {
		if c.Suit != trump || trumpStrength(c.Rank) <= trumpStrength(hi.Card.Rank) {
			return ErrMustOvertrump
		}
		return nil
	}
	if c.Suit != trump {
		return ErrMustUndertrump
	}
	return nil
}

// LegalPlays filters player p's hand through CheckPlay.
func LegalPlays(d *DealState, p int) []Card {
	out := make([]Card, 0, len(d.Hands[p]))
	for _, c := range d.Hands[p] {
		if CheckPlay(d, p, c) == nil {
			out = append(out, c)
		}
	}
	return out
}

func handContains(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

func hasSuit(hand []Card, s Suit) bool {
	for _, h := range hand {
		if h.Suit == s {
			return true
		}
	}
	return false
}

func canOvertrump(hand []Card, trump Suit, over Card) bool {
	for _, h := range hand {
		if h.Suit == trump && trumpStrength(h.Rank) > trumpStrength(over.Rank) {
			return true
		}
	}
	return false
}

func removeCard(hand []Card, c Card) []Card {
	out := hand[:0]
	for _, h := range hand {
		if h != c {
			out = append(out, h)
		}
	}
	return out
}
