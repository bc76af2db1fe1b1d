package room

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"beloted/internal/engine"
	"beloted/internal/protocol"
)

var (
	ErrRoomFull         = errors.New("room is full")
	ErrNotInRoom        = errors.New("you are not in a room")
	ErrNotEnoughPlayers = errors.New("the room needs four seated players")
	ErrGameInProgress   = errors.New("a deal is already in progress")
	ErrNoActiveDeal     = errors.New("no deal in progress")
	ErrMatchOver        = errors.New("the match is over")
)

type occupant struct {
	client   Client
	nickname string
}

// Room is one table: four seat slots and at most one active deal. All
// access goes through mu, the per-room critical section that serializes
// commands and their broadcasts.
type Room struct {
	Code      string
	CreatedAt time.Time

	mu    sync.Mutex
	seats [4]*occupant
	deal  *engine.DealState

	// match scores carried over when a deal is cancelled mid-flight
	carried [2]int

	rng *rand.Rand
}

func newRoom(code string, rng *rand.Rand) *Room {
	return &Room{Code: code, CreatedAt: time.Now(), rng: rng}
}

func (r *Room) seatOf(c Client) int {
	for i, occ := range r.seats {
		if occ != nil && occ.client.ID() == c.ID() {
			return i
		}
	}
	return -1
}

func (r *Room) seatedCount() int {
	n := 0
	for _, occ := range r.seats {
		if occ != nil {
			n++
		}
	}
	return n
}

func (r *Room) empty() bool { return r.seatedCount() == 0 }

// canSeat reports whether a join by c would be accepted: an own seat to
// keep, or a free slot.
func (r *Room) canSeat(c Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seatOf(c) >= 0 || r.seatedCount() < 4
}

// join assigns the lowest empty seat, or keeps the client's existing one.
func (r *Room) join(c Client, nickname string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s := r.seatOf(c); s >= 0 {
		r.seats[s].nickname = nickname
		r.broadcastRoomUpdate()
		return nil
	}
	if r.seatedCount() >= 4 {
		return ErrRoomFull
	}
	for i := range r.seats {
		if r.seats[i] == nil {
			r.seats[i] = &occupant{client: c, nickname: nickname}
			break
		}
	}
	r.broadcastRoomUpdate()
	return nil
}

// vacate frees the client's seat. A deal in flight cannot continue without
// its player and is cancelled; the match scores survive for the next one.
// Reports whether the room is now empty.
func (r *Room) vacate(c Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.seatOf(c)
	if s < 0 {
		return r.empty()
	}
	r.seats[s] = nil
	if r.deal != nil && r.deal.Phase != engine.PhaseFinished {
		r.carried = r.deal.MatchScores
		r.deal = nil
		log.Printf("room %s: seat %d left mid-deal, deal cancelled", r.Code, s)
	}
	if r.empty() {
		return true
	}
	r.broadcastRoomUpdate()
	return false
}

// startGame deals the first deal of a match (dealer = seat 0), or the next
// one after a finished deal (dealer rotates, match scores carry over).
func (r *Room) startGame(c Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seatOf(c) < 0 {
		return ErrNotInRoom
	}
	if r.seatedCount() < 4 {
		return ErrNotEnoughPlayers
	}
	if r.deal == nil {
		d := engine.NewDeal(0, r.rng)
		d.MatchScores = r.carried
		r.carried = [2]int{}
		r.deal = d
	} else {
		if r.deal.Phase != engine.PhaseFinished {
			return ErrGameInProgress
		}
		if r.deal.MatchOver() {
			return ErrMatchOver
		}
		nd, err := r.deal.NextDeal()
		if err != nil {
			return err
		}
		r.deal = nd
	}
	r.broadcastGameState()
	return nil
}

func (r *Room) play(c Client, card engine.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.seatOf(c)
	if s < 0 {
		return ErrNotInRoom
	}
	if r.deal == nil {
		return ErrNoActiveDeal
	}
	if err := r.deal.Play(s, card); err != nil {
		return err
	}
	r.broadcastGameState()
	return nil
}

func (r *Room) bid(c Client, take bool, suit *engine.Suit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.seatOf(c)
	if s < 0 {
		return ErrNotInRoom
	}
	if r.deal == nil {
		return ErrNoActiveDeal
	}
	if err := r.deal.Bid(s, take, suit); err != nil {
		return err
	}
	r.broadcastGameState()
	return nil
}

func (r *Room) announceBelote(c Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.seatOf(c)
	if s < 0 {
		return ErrNotInRoom
	}
	if r.deal == nil {
		return ErrNoActiveDeal
	}
	if err := r.deal.AnnounceBelote(s); err != nil {
		return err
	}
	r.broadcastGameState()
	return nil
}

// broadcastRoomUpdate fans the roster out to every seated client.
// Callers hold r.mu.
func (r *Room) broadcastRoomUpdate() {
	upd := protocol.RoomUpdate{RoomCode: r.Code, Players: []protocol.PlayerInfo{}}
	for i, occ := range r.seats {
		if occ == nil {
			continue
		}
		seat := i
		upd.Players = append(upd.Players, protocol.PlayerInfo{
			ID:       string(occ.client.ID()),
			Nickname: occ.nickname,
			Seat:     &seat,
		})
	}
	frame, err := protocol.Marshal(protocol.MsgRoomUpdate, upd)
	if err != nil {
		log.Printf("room %s: encode room update: %v", r.Code, err)
		return
	}
	for _, occ := range r.seats {
		if occ != nil {
			occ.client.Send(frame)
		}
	}
}

// broadcastGameState sends each seated client its own redacted view of
// the deal. Callers hold r.mu.
func (r *Room) broadcastGameState() {
	for i, occ := range r.seats {
		if occ == nil {
			continue
		}
		view := buildStateView(r.deal, i)
		frame, err := protocol.Marshal(protocol.MsgGameState, protocol.GameState{State: view})
		if err != nil {
			log.Printf("room %s: encode game state: %v", r.Code, err)
			return
		}
		occ.client.Send(frame)
	}
}
