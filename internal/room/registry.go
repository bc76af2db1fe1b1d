package room

import (
	"log"
	"math/rand"
	"strings"
	"sync"

	"beloted/internal/protocol"
)

// Registry owns every room and tracks which room each client sits in.
// Room creation, lookup and deletion happen under the registry lock; room
// content stays under the per-room lock (always acquired after this one).
type Registry struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	member  map[protocol.ClientID]*Room
	newRand func() *rand.Rand
}

// NewRegistry builds a registry; newRand supplies each room's private
// shuffle source so tests can pin the seed.
func NewRegistry(newRand func() *rand.Rand) *Registry {
	return &Registry{
		rooms:   make(map[string]*Room),
		member:  make(map[protocol.ClientID]*Room),
		newRand: newRand,
	}
}

// Dispatch routes a parsed command from client c to its room.
func (g *Registry) Dispatch(c Client, cmd protocol.Command) error {
	switch cmd := cmd.(type) {
	case protocol.JoinRoom:
		return g.Join(c, cmd.RoomCode, cmd.Nickname)
	case protocol.StartGame:
		r, err := g.roomOf(c)
		if err != nil {
			return err
		}
		return r.startGame(c)
	case protocol.PlayCard:
		r, err := g.roomOf(c)
		if err != nil {
			return err
		}
		return r.play(c, cmd.Card)
	case protocol.ChooseTrump:
		r, err := g.roomOf(c)
		if err != nil {
			return err
		}
		return r.bid(c, cmd.Take, cmd.Suit)
	case protocol.AnnounceBelote:
		r, err := g.roomOf(c)
		if err != nil {
			return err
		}
		return r.announceBelote(c)
	default:
		return protocol.ErrUnknownType
	}
}

func (g *Registry) roomOf(c Client) (*Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.member[c.ID()]
	if !ok {
		return nil, ErrNotInRoom
	}
	return r, nil
}

// Join seats the client in the room named by code, creating the room on
// first use. A client holds at most one seat across all rooms: joining a
// different room vacates the old seat first.
func (g *Registry) Join(c Client, code, nickname string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	nickname = strings.TrimSpace(nickname)
	if code == "" || nickname == "" {
		return protocol.ErrMissingField
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[code]
	if !ok {
		r = newRoom(code, g.newRand())
		g.rooms[code] = r
		log.Printf("room %s created", code)
	}
	// reject a full room before touching the client's current seat: a
	// rejected join must leave every room exactly as it was
	if !r.canSeat(c) {
		return ErrRoomFull
	}

	if old, ok := g.member[c.ID()]; ok && old.Code != code {
		delete(g.member, c.ID())
		if old.vacate(c) {
			delete(g.rooms, old.Code)
			log.Printf("room %s deleted (empty)", old.Code)
		}
	}
	if err := r.join(c, nickname); err != nil {
		return err
	}
	g.member[c.ID()] = r
	return nil
}

// Disconnect vacates the client's seat, if any, and deletes the room once
// it empties. Safe to call for clients that never joined.
func (g *Registry) Disconnect(c Client) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.member[c.ID()]
	if !ok {
		return
	}
	delete(g.member, c.ID())
	if r.vacate(c) {
		delete(g.rooms, r.Code)
		log.Printf("room %s deleted (empty)", r.Code)
	}
}
