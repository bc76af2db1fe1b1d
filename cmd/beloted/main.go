package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"beloted/internal/netx"
	"beloted/internal/room"
	"beloted/pkg/types"
)

func main() {
	cfg := types.DefaultConfig()
	flag.StringVar(&cfg.Addr, "listen", cfg.Addr, "http listen addr")
	flag.IntVar(&cfg.SendQueue, "send-queue", cfg.SendQueue, "outbound frames buffered per session")
	flag.Parse()

	reg := room.NewRegistry(func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	})

	srv := netx.NewServer(cfg, reg)
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
