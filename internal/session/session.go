package session

import (
	"context"
	"errors"
	"time"

	"github.com/coder/websocket"
	"k8s.io/klog/v2"

	"arenadrift/internal/input"
	"arenadrift/internal/protocol"
)

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 2 * time.Second
)

// Renderer consumes read-only state published by the session and draws it.
// It holds the aim reference marker between frames; the marker is never
// transmitted to the server.
type Renderer interface {
	DrawSnapshot(players []protocol.PlayerSnapshot)
	DrawGameOver()
	DrawWelcome()
	DrawError(text string)
	DrawInputRef(x, y float64)
	ClearInputRef()
}

// Scoreboard is the ranked-score view, rows 0..ScoreboardSize-1.
type Scoreboard interface {
	Update(rank int, name string, score float64)
}

// Session is one logical connected-play attempt: one socket, one lifecycle
// state. All state mutations are funneled through the dispatch func so they
// run on the single event-processing context, matching the pointer and
// render callbacks; there are no locks.
type Session struct {
	id   string
	name string
	url  string

	dial       Dialer
	dispatch   func(func())
	renderer   Renderer
	scoreboard Scoreboard

	state State
	wire  Wire
	rows  [ScoreboardSize]string
}

func newSession(id, name, url string, dial Dialer, dispatch func(func()), r Renderer, sb Scoreboard) *Session {
	return &Session{
		id:         id,
		name:       name,
		url:        url,
		dial:       dial,
		dispatch:   dispatch,
		renderer:   r,
		scoreboard: sb,
		state:      StateConnecting,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// connect dials in the background and hands the open socket back to the
// event-processing context.
func (s *Session) connect() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()
		w, err := s.dial(ctx, s.url)
		if err != nil {
			klog.Errorf("session: dial failed: %v", err)
			s.dispatch(func() { s.fail() })
			return
		}
		s.dispatch(func() { s.onOpen(w) })
	}()
}

func (s *Session) onOpen(w Wire) {
	if s.state != StateConnecting {
		// Torn down while the dial was in flight.
		_ = w.Close(websocket.StatusNormalClosure, "superseded")
		return
	}
	s.wire = w
	s.send(protocol.Register{ID: s.id, Name: s.name})
	s.state = StateRegistering
	klog.V(1).Infof("session: registered as %s (%s)", s.name, s.id)
	go s.readLoop(w)
}

func (s *Session) readLoop(w Wire) {
	ctx := context.Background()
	for {
		data, err := w.ReadMessage(ctx)
		if err != nil {
			s.dispatch(func() { s.onReadError(err) })
			return
		}
		s.dispatch(func() { s.onMessage(data) })
	}
}

func (s *Session) onMessage(data []byte) {
	if s.state.terminal() {
		return
	}
	msg, err := protocol.DecodeServerMessage(data)
	if err != nil {
		klog.Warningf("session: dropping message: %v", err)
		return
	}
	if msg.GameOver {
		s.state = StateGameOver
		s.renderer.DrawGameOver()
		return
	}
	if s.state == StateRegistering {
		// The first snapshot is the implicit register acknowledgment.
		s.state = StatePlaying
	}
	s.updateScoreboard(msg.Players)
	if s.state == StatePlaying {
		// While the game-over overlay is up the canvas stays as is.
		s.renderer.DrawSnapshot(msg.Players)
	}
}

func (s *Session) onReadError(err error) {
	if s.state.terminal() {
		return
	}
	var ce websocket.CloseError
	if errors.As(err, &ce) {
		s.state = StateClosed
		reason := ce.Reason
		if reason == "" {
			reason = "connection closed"
		}
		klog.Infof("session: closed: %s", reason)
		s.renderer.DrawError(reason)
		return
	}
	klog.Errorf("session: transport error: %v", err)
	s.fail()
}

func (s *Session) fail() {
	if s.state.terminal() {
		return
	}
	s.state = StateErrored
	s.renderer.DrawError("connection error")
}

// HandleInput routes one abstract pointer event according to the lifecycle
// state. Start and end are never forwarded over the wire: in play they only
// move the local aim marker, and in game over the start gesture doubles as
// the respawn trigger. That dual use of the same event variant is
// deliberate; routing by state keeps the whole contract in this one switch.
func (s *Session) HandleInput(ev input.Event) {
	switch s.state {
	case StatePlaying:
		switch ev.Kind {
		case input.KindStart:
			s.renderer.DrawInputRef(ev.X, ev.Y)
		case input.KindMove:
			s.send(protocol.Input{Ddx: ev.Ddx, Ddy: ev.Ddy})
		case input.KindEnd:
			s.renderer.ClearInputRef()
		}
	case StateGameOver:
		if ev.Kind == input.KindStart {
			s.send(protocol.Respawn{})
			s.state = StatePlaying
		}
	default:
		// Connecting, registering, closed, errored: discarded. Nothing
		// may go out before the first snapshot or after the socket dies.
	}
}

func (s *Session) send(cmd protocol.Command) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.wire.WriteJSON(ctx, cmd); err != nil {
		klog.Errorf("session: write failed: %v", err)
	}
}

// teardown closes the socket and marks the session dead. Used when a new
// session supersedes this one or the page unloads.
func (s *Session) teardown() {
	s.state = StateClosed
	if s.wire != nil {
		_ = s.wire.Close(websocket.StatusNormalClosure, "superseded")
	}
}
