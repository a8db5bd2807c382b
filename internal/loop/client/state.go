package client

import (
	"github.com/tomz197/roadrush/internal/loop"
)

// ClientState holds per-connection presentation state. The game itself
// lives in loop.State.
type ClientState struct {
	Running       bool           // Client loop running
	shutdown      bool           // Server announced shutdown
	shutdownTimer float64        // Countdown before auto-disconnect on shutdown
	isInactive    bool           // Whether the client is in inactive warning state
	wasInactive   bool           // Inactivity state at the last drawn frame
	prevGameState loop.GameState // Game state at the last drawn frame
	board         []string       // Formatted best runs
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:       true,
		prevGameState: -1,
	}
}
