package client

import (
	"time"

	"github.com/tomz197/target-blaster/internal/input"
)

// ClientState holds per-connection UI state. Game state lives in loop.Game.
type ClientState struct {
	Input         input.Input
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time, capped
	shuttingDown  bool          // Host announced a shutdown
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{Running: true}
}
