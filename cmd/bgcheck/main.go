package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/bgcheck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var simulated bool
	flag.BoolVar(&simulated, "t", false, "test mode: replay simulated readings every 10s")
	flag.BoolVar(&simulated, "test", false, "test mode: replay simulated readings every 10s")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{Simulated: simulated}); err != nil {
		fmt.Fprintf(os.Stderr, "bgcheck: %v\n", err)
		return 1
	}
	return 0
}
