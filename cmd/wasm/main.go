package main

import (
	"flag"
	"os"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"arenadrift/internal/frontend"
)

func main() {
	// Initialize klog for WASM, forcing logs to stderr (console)
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.Set("logtostderr", "true")
	klog.SetOutput(os.Stderr)
	klog.Infof("WASM started!")

	app.Route("/", func() app.Composer { return &frontend.Arena{} })

	// When building for WEB (GOOS=js GOARCH=wasm), this runs the client.
	// In server mode it does nothing; the server lives in cmd/server.
	app.RunWhenOnBrowser()
}
