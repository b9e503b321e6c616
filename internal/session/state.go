package session

// State is the session lifecycle state. It is owned exclusively by the
// Session and is the sole source of truth for whether input is forwarded,
// buffered into the aim marker, or dropped.
type State int

const (
	// StateConnecting: socket dial in flight, all input discarded.
	StateConnecting State = iota
	// StateRegistering: Register sent, waiting for the first snapshot.
	// All input still discarded.
	StateRegistering
	// StatePlaying: move commands flow to the server; start/end only move
	// the local aim marker.
	StatePlaying
	// StateGameOver: all input suppressed except a start gesture, which
	// triggers a respawn.
	StateGameOver
	// StateClosed: the socket closed. Terminal for this session.
	StateClosed
	// StateErrored: transport failure. Terminal for this session.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateRegistering:
		return "registering"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	case StateClosed:
		return "closed"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// terminal reports whether the session can never send again. Recovery from a
// terminal state is a brand-new session with a fresh handshake, never a
// reuse of the dead socket.
func (s State) terminal() bool {
	return s == StateClosed || s == StateErrored
}
