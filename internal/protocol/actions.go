package protocol

import (
	"encoding/json"
	"errors"

	"beloted/internal/engine"
)

var (
	ErrBadEnvelope  = errors.New("malformed message")
	ErrUnknownType  = errors.New("unknown message type")
	ErrMissingField = errors.New("missing required field")
)

// Command is the parsed, validated form of an inbound envelope.
type Command interface{ isCommand() }

type JoinRoom struct {
	RoomCode string `json:"roomCode"`
	Nickname string `json:"nickname"`
}

type StartGame struct{}

type PlayCard struct {
	Card engine.Card `json:"card"`
}

// ChooseTrump carries a bidding action: Take is false for a pass. Suit is
// only present on a second-round take.
type ChooseTrump struct {
	Take bool
	Suit *engine.Suit
}

type AnnounceBelote struct{}

func (JoinRoom) isCommand()       {}
func (StartGame) isCommand()      {}
func (PlayCard) isCommand()       {}
func (ChooseTrump) isCommand()    {}
func (AnnounceBelote) isCommand() {}

type joinRoomPayload struct {
	RoomCode string `json:"roomCode"`
	Nickname string `json:"nickname"`
}

type playCardPayload struct {
	Card *engine.Card `json:"card"`
}

type chooseTrumpPayload struct {
	Action string       `json:"action"`
	Suit   *engine.Suit `json:"suit,omitempty"`
}

// ParseCommand validates an inbound frame against the schema of its type
// tag. Unknown tags and malformed payloads are rejected here, never
// silently accepted.
func ParseCommand(data []byte) (Command, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrBadEnvelope
	}
	switch env.Type {
	case MsgJoinRoom:
		var p joinRoomPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, ErrBadEnvelope
		}
		if p.RoomCode == "" || p.Nickname == "" {
			return nil, ErrMissingField
		}
		return JoinRoom{RoomCode: p.RoomCode, Nickname: p.Nickname}, nil

	case MsgStartGame:
		return StartGame{}, nil

	case MsgPlayCard:
		var p playCardPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, ErrBadEnvelope
		}
		if p.Card == nil {
			return nil, ErrMissingField
		}
		return PlayCard{Card: *p.Card}, nil

	case MsgChooseTrump:
		var p chooseTrumpPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, ErrBadEnvelope
		}
		switch p.Action {
		case "take":
			return ChooseTrump{Take: true, Suit: p.Suit}, nil
		case "pass":
			return ChooseTrump{Take: false}, nil
		default:
			return nil, ErrMissingField
		}

	case MsgAnnounceBelote:
		return AnnounceBelote{}, nil

	default:
		return nil, ErrUnknownType
	}
}
