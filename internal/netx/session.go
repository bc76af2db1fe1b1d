package netx

import (
	"log"

	"github.com/gorilla/websocket"

	"beloted/internal/protocol"
	"beloted/internal/room"
)

// Session binds one websocket connection to a client identity: a read
// pump that parses and dispatches inbound frames, and a write pump that
// drains the send queue. The identity dies with the connection.
type Session struct {
	id   protocol.ClientID
	conn *websocket.Conn
	reg  *room.Registry
	send chan []byte
}

func newSession(conn *websocket.Conn, reg *room.Registry, queue int) *Session {
	return &Session{
		id:   protocol.NewClientID(),
		conn: conn,
		reg:  reg,
		send: make(chan []byte, queue),
	}
}

func (s *Session) ID() protocol.ClientID { return s.id }

// Send queues an outbound frame without blocking the room's critical
// section. A client too slow to drain its queue loses frames, not the room.
func (s *Session) Send(frame []byte) {
	select {
	case s.send <- frame:
	default:
		log.Printf("session %s: send queue full, dropping frame", s.id)
	}
}

// readPump owns the connection's inbound side. Parse failures and
// rejected commands go back to this client only; the loop ends on any
// read error, which also vacates the seat.
func (s *Session) readPump() {
	defer func() {
		s.reg.Disconnect(s)
		close(s.send)
		_ = s.conn.Close()
		log.Printf("session %s: disconnected", s.id)
	}()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		cmd, err := protocol.ParseCommand(data)
		if err != nil {
			s.sendError(err)
			continue
		}
		if err := s.reg.Dispatch(s, cmd); err != nil {
			s.sendError(err)
		}
	}
}

func (s *Session) writePump() {
	for frame := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

func (s *Session) sendError(cause error) {
	frame, err := protocol.Marshal(protocol.MsgError, protocol.ErrorPayload{Message: cause.Error()})
	if err != nil {
		log.Printf("session %s: encode error message: %v", s.id, err)
		return
	}
	s.Send(frame)
}
