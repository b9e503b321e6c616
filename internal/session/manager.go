package session

import (
	"net/url"
	"strings"

	"k8s.io/klog/v2"

	"arenadrift/internal/input"
)

// ManagerConfig wires the Manager to its collaborators.
type ManagerConfig struct {
	// URL is the game socket endpoint, normally derived from the page
	// location with WebSocketURL.
	URL string
	// PlayableSize is the side of the canvas's logical playable square in
	// screen coordinates. Start gestures outside it never create a
	// session (taps on surrounding UI, like the name field, must not
	// start a game).
	PlayableSize float64
	// Name reads the player display name from the UI at session-creation
	// time.
	Name func() string

	Store      Store
	Renderer   Renderer
	Scoreboard Scoreboard
	// Dispatch runs a func on the single event-processing context.
	Dispatch func(func())
	// Dial defaults to the production websocket Dialer.
	Dial Dialer
}

// Manager enforces the single-active-session invariant: it validates start
// gestures, creates sessions, and tears down the previous one first.
type Manager struct {
	cfg     ManagerConfig
	current *Session
}

func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Dial == nil {
		cfg.Dial = Dial
	}
	return &Manager{cfg: cfg}
}

// SessionLive reports whether a session exists that is not terminal. The
// frontend uses this to decide when to suppress default touch behavior.
func (m *Manager) SessionLive() bool {
	return m.current != nil && !m.current.state.terminal()
}

// HandleInput routes one abstract pointer event. A start gesture while no
// session is live creates a new session, if it lands inside the playable
// square; everything else goes to the current session, which filters by its
// lifecycle state.
func (m *Manager) HandleInput(ev input.Event) {
	if !m.SessionLive() {
		if ev.Kind != input.KindStart {
			return
		}
		if !m.inPlayable(ev.X, ev.Y) {
			return
		}
		m.start()
		return
	}
	m.current.HandleInput(ev)
}

func (m *Manager) inPlayable(x, y float64) bool {
	return x >= 0 && x < m.cfg.PlayableSize && y >= 0 && y < m.cfg.PlayableSize
}

func (m *Manager) start() {
	if m.current != nil {
		m.current.teardown()
	}
	name := m.cfg.Name()
	SavePlayerName(m.cfg.Store, name)
	id := PlayerID(m.cfg.Store)
	klog.Infof("manager: starting session for %q", name)
	s := newSession(id, name, m.cfg.URL, m.cfg.Dial, m.cfg.Dispatch, m.cfg.Renderer, m.cfg.Scoreboard)
	m.current = s
	s.connect()
}

// Shutdown tears down any live session, for page unload.
func (m *Manager) Shutdown() {
	if m.current != nil {
		m.current.teardown()
		m.current = nil
	}
}

// WebSocketURL derives the game socket URL from the page's own location:
// same host and path, scheme upgraded to the WebSocket equivalent, "/ws"
// appended. This binds the client to being served from the same origin as
// the game server.
func WebSocketURL(page *url.URL) string {
	scheme := "ws"
	if page.Scheme == "https" {
		scheme = "wss"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   page.Host,
		Path:   strings.TrimSuffix(page.Path, "/") + "/ws",
	}
	return u.String()
}
