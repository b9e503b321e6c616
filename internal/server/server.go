package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"arenadrift/internal/frontend"
)

// State reports the running server's bound address, for callers that let the
// listener pick a port.
type State struct {
	Address string
}

// Run serves the wasm client and its web assets, and reverse-proxies /ws to
// the authoritative game server at gameAddr so the client's same-origin
// socket URL holds in development. It blocks until ctx is canceled. No game
// logic runs here.
func Run(ctx context.Context, addr, gameAddr string, started chan<- *State) error {
	// Register the route so the server knows how to prerender it.
	app.Route("/", func() app.Composer { return &frontend.Arena{} })

	h := &app.Handler{
		Name:        "ArenaDrift",
		Description: "A real-time multiplayer arcade game",
		Styles: []string{
			"/web/css/main.css",
		},
	}

	mux := http.NewServeMux()
	if gameAddr != "" {
		target := &url.URL{Scheme: "http", Host: gameAddr}
		mux.Handle("/ws", httputil.NewSingleHostReverseProxy(target))
	}
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir("web/"))))
	mux.Handle("/", h)

	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: mux}
	state := &State{Address: ln.Addr().String()}
	if started != nil {
		started <- state
	}

	errCh := make(chan error, 1)
	go func() {
		Log.Infof("ArenaDrift client served on http://%s (game server: %q)", state.Address, gameAddr)
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	Log.Info("Shutting down...")
	return srv.Shutdown(shutdownCtx)
}
