package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suits go over the wire as their Unicode symbol ("♣", "♦", "♥", "♠"),
// ranks as their short string ("7".."10", "J", "Q", "K", "A").

func (s Suit) MarshalJSON() ([]byte, error) {
	if s > SuitSpades {
		return nil, fmt.Errorf("invalid suit: %d", s)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the symbol or a single letter (c/d/h/s, any case).
func (s *Suit) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "♣", "c":
		*s = SuitClubs
	case "♦", "d":
		*s = SuitDiamonds
	case "♥", "h":
		*s = SuitHearts
	case "♠", "s":
		*s = SuitSpades
	default:
		return fmt.Errorf("invalid suit %q", str)
	}
	return nil
}

func (r Rank) MarshalJSON() ([]byte, error) {
	if r < RankSeven || r > RankAce {
		return nil, fmt.Errorf("invalid rank: %d", r)
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts "10" (not "T") for the ten, letters in any case.
func (r *Rank) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "7":
		*r = RankSeven
	case "8":
		*r = RankEight
	case "9":
		*r = RankNine
	case "10":
		*r = RankTen
	case "J":
		*r = RankJack
	case "Q":
		*r = RankQueen
	case "K":
		*r = RankKing
	case "A":
		*r = RankAce
	default:
		return fmt.Errorf("invalid rank %q", str)
	}
	return nil
}
