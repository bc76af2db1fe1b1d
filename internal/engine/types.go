package engine

import (
	"fmt"
)

type Suit byte

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "♣"
	case SuitDiamonds:
		return "♦"
	case SuitHearts:
		return "♥"
	case SuitSpades:
		return "♠"
	default:
		return "?"
	}
}

type Rank byte

const (
	RankSeven Rank = iota + 7
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

func (r Rank) String() string {
	switch r {
	case RankSeven:
		return "7"
	case RankEight:
		return "8"
	case RankNine:
		return "9"
	case RankTen:
		return "10"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return "?"
	}
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

type Phase int

const (
	PhaseBiddingFirst Phase = iota
	PhaseBiddingSecond
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseBiddingFirst:
		return "bidding_first"
	case PhaseBiddingSecond:
		return "bidding_second"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Seats 0 and 2 are team 0, seats 1 and 3 are team 1.
func TeamOf(player int) int { return player % 2 }

func sameTeam(a, b int) bool { return TeamOf(a) == TeamOf(b) }

// PlayedCard is one entry of a trick, in play order.
type PlayedCard struct {
	Player int  `json:"player"`
	Card   Card `json:"card"`
}

// Trick holds up to four plays. Winner is -1 until the fourth card is down.
type Trick struct {
	Plays  []PlayedCard `json:"plays"`
	Leader int          `json:"leader"`
	Winner int          `json:"winner"`
}

// Belote tracks the trump K+Q declaration. Stage 0 = not announced,
// 1 = belote, 2 = rebelote. Holder and Team are -1 until stage 1.
type Belote struct {
	Holder int `json:"holder"`
	Stage  int `json:"stage"`
	Points int `json:"points"`
	Team   int `json:"team"`
}
