package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rvail/orrery/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override orrery config path (optional)")
	refreshSeconds := flag.Int("refresh", 0, "ephemeris refresh interval in seconds (optional, defaults to 5s)")
	symbols := flag.Bool("unicode", false, "use astronomical symbols for body markers")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Symbols: *symbols}
	if refresh := *refreshSeconds; refresh > 0 {
		opts.RefreshSeconds = refresh
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		return 1
	}
	return 0
}
