package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arenadrift/internal/server"
)

var (
	flagAddr     = flag.String("addr", ":8080", "address to serve the client on, e.g. :8080")
	flagGameAddr = flag.String("game-addr", "", "authoritative game server host:port; /ws is proxied there")
	flagLog      = flag.String("log", "app.log", "rolling log file path")
)

func main() {
	flag.Parse()

	if err := server.InitLogger(*flagLog); err != nil {
		panic(err)
	}
	defer server.SyncLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan *server.State, 1)
	go func() {
		state := <-started
		fmt.Printf("ArenaDrift listening on http://%s\n", state.Address)
	}()

	// Graceful exit on Ctrl+C.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	if err := server.Run(ctx, *flagAddr, *flagGameAddr, started); err != nil {
		server.Log.Fatalf("server: %v", err)
	}
}
