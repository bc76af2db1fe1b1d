package netx

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"beloted/internal/room"
	"beloted/pkg/types"
)

// Server exposes the websocket endpoint that feeds the room registry.
type Server struct {
	cfg      types.Config
	reg      *room.Registry
	upgrader websocket.Upgrader
}

func NewServer(cfg types.Config, reg *room.Registry) *Server {
	return &Server{
		cfg: cfg,
		reg: reg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// the game client is served from anywhere; identity is per-connection
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/ws", s.handleWS)
	return r
}

func (s *Server) handleWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("upgrade error: %v", err)
		return
	}
	sess := newSession(conn, s.reg, s.cfg.SendQueue)
	log.Printf("session %s: connected from %s", sess.ID(), conn.RemoteAddr())
	go sess.writePump()
	go sess.readPump()
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	log.Printf("listening on %s", s.cfg.Addr)
	return s.Router().Run(s.cfg.Addr)
}
