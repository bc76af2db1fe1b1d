package netx

import (
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beloted/internal/protocol"
	"beloted/internal/room"
	"beloted/pkg/types"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := room.NewRegistry(func() *rand.Rand { return rand.New(rand.NewSource(1)) })
	srv := httptest.NewServer(NewServer(types.DefaultConfig(), reg).Router())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) protocol.Envelope {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var env protocol.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestJoinOverWebsocket(t *testing.T) {
	conn := dialTestServer(t)

	err := conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"type":"join_room","payload":{"roomCode":"tbl","nickname":"Ana"}}`))
	require.NoError(t, err)

	env := readEnvelope(t, conn)
	require.Equal(t, protocol.MsgRoomUpdate, env.Type)
	var upd protocol.RoomUpdate
	require.NoError(t, json.Unmarshal(env.Payload, &upd))
	assert.Equal(t, "TBL", upd.RoomCode)
	require.Len(t, upd.Players, 1)
	assert.Equal(t, "Ana", upd.Players[0].Nickname)
}

func TestProtocolErrorsGoBackToSender(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"warp_drive"}`)))
	env := readEnvelope(t, conn)
	assert.Equal(t, protocol.MsgError, env.Type)

	// commands that need a room are rejected privately, too
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"start_game"}`)))
	env = readEnvelope(t, conn)
	assert.Equal(t, protocol.MsgError, env.Type)
	var p protocol.ErrorPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.NotEmpty(t, p.Message)
}
