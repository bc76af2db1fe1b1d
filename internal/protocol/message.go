package protocol

import (
	"encoding/json"

	"beloted/internal/engine"
)

type MsgType string

const (
	// client -> server
	MsgJoinRoom       MsgType = "join_room"
	MsgStartGame      MsgType = "start_game"
	MsgPlayCard       MsgType = "play_card"
	MsgChooseTrump    MsgType = "choose_trump"
	MsgAnnounceBelote MsgType = "announce_belote"

	// server -> client
	MsgRoomUpdate MsgType = "room_update"
	MsgGameState  MsgType = "game_state"
	MsgError      MsgType = "error"
)

// Envelope is the wire shape of every message in both directions.
type Envelope struct {
	Type    MsgType         `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Marshal frames a payload under the given type tag.
func Marshal(t MsgType, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: t, Payload: raw})
}

// PlayerInfo is one roster entry of a room_update. Seat is nil for a
// client that holds no seat.
type PlayerInfo struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Seat     *int   `json:"seat"`
}

type RoomUpdate struct {
	RoomCode string       `json:"roomCode"`
	Players  []PlayerInfo `json:"players"`
}

type GameState struct {
	State StateView `json:"state"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// TrickView mirrors engine.Trick with the winner hidden until resolved.
type TrickView struct {
	Plays  []engine.PlayedCard `json:"plays"`
	Leader int                 `json:"leader"`
	Winner *int                `json:"winner,omitempty"`
}

type BeloteView struct {
	Stage  int  `json:"stage"`
	Holder *int `json:"holder,omitempty"`
	Team   *int `json:"team,omitempty"`
	Points int  `json:"points"`
}

// StateView is the per-recipient serialization of a deal: the recipient's
// own hand in full, card counts for everyone else.
type StateView struct {
	Phase         string        `json:"phase"`
	Dealer        int           `json:"dealer"`
	CurrentPlayer int           `json:"currentPlayer"`
	DealNumber    int           `json:"dealNumber"`
	TurnedCard    *engine.Card  `json:"turnedCard,omitempty"`
	ProposedTrump *engine.Suit  `json:"proposedTrump,omitempty"`
	Trump         *engine.Suit  `json:"trump,omitempty"`
	TrumpChooser  *int          `json:"trumpChooser,omitempty"`
	Bidder        *int          `json:"bidder,omitempty"`
	Trick         *TrickView    `json:"trick,omitempty"`
	YourSeat      int           `json:"yourSeat"`
	Hand          []engine.Card `json:"hand"`
	HandCounts    [4]int        `json:"handCounts"`
	DealScores    [2]int        `json:"dealScores"`
	MatchScores   [2]int        `json:"matchScores"`
	Belote        BeloteView    `json:"belote"`
}
