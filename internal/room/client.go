package room

import "beloted/internal/protocol"

// Client is a connected session as the room layer sees it. Send must not
// block: slow consumers are the transport's problem, not the room's.
type Client interface {
	ID() protocol.ClientID
	Send(frame []byte)
}
