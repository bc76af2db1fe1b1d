package types

// Config holds the server's runtime knobs. Keep this struct stable.
type Config struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
	SendQueue       int // outbound frames buffered per session
}

// DefaultConfig returns the settings used when no flags override them.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendQueue:       64,
	}
}
