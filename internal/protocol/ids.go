package protocol

import (
	"fmt"
	"math/rand"
)

// ClientID is an opaque per-connection identity, discarded on disconnect.
type ClientID string

func NewClientID() ClientID { return ClientID(fmt.Sprintf("c-%d", rand.Int63())) }
