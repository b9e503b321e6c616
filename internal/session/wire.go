package session

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Wire is the subset of a WebSocket connection the session uses. Each
// WriteJSON call produces one discrete text frame; the transport's framing
// delimits commands, there is no batching.
type Wire interface {
	WriteJSON(ctx context.Context, v any) error
	ReadMessage(ctx context.Context) ([]byte, error)
	Close(code websocket.StatusCode, reason string) error
}

// Dialer opens a Wire to the given ws:// or wss:// URL.
type Dialer func(ctx context.Context, url string) (Wire, error)

// Dial is the production Dialer, backed by coder/websocket (which wraps the
// browser's own WebSocket when compiled to wasm).
func Dial(ctx context.Context, url string) (Wire, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &wsWire{conn: conn}, nil
}

type wsWire struct {
	conn *websocket.Conn
}

func (w *wsWire) WriteJSON(ctx context.Context, v any) error {
	return wsjson.Write(ctx, w.conn, v)
}

func (w *wsWire) ReadMessage(ctx context.Context) ([]byte, error) {
	_, data, err := w.conn.Read(ctx)
	return data, err
}

func (w *wsWire) Close(code websocket.StatusCode, reason string) error {
	return w.conn.Close(code, reason)
}
