package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/eventcache/internal/app"
	"github.com/dmitrijs2005/eventcache/internal/config"
	"github.com/dmitrijs2005/eventcache/internal/flagx"
	"github.com/dmitrijs2005/eventcache/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	// everything that is not a recognized flag is the command
	args := flagx.PositionalArgs(os.Args[1:])

	a := app.NewApp(cfg, log, os.Stdout)
	if err := a.Run(ctx, args); err != nil {
		log.Error(ctx, "cachectl failed", "error", err)
		os.Exit(1)
	}
}
