// Command drain runs one pass over the push queue and exits. It is meant to
// be started by an external scheduler such as cron.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/app"
	"github.com/aliskhannn/push-notifier/internal/config"
)

func main() {
	purge := flag.Bool("purge", false, "delete every queued job instead of delivering")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer app.CloseDB(db)

	source, _, err := app.NewContentSource(ctx, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init content source")
	}

	registry, err := app.NewTransports(ctx, cfg, source)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init transports")
	}

	drainer, queue := app.NewDrainer(db, source, registry, cfg)

	if *purge {
		n, err := queue.Purge(ctx)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to purge push queue")
			os.Exit(1)
		}

		zlog.Logger.Info().Int64("deleted", n).Msg("push queue purged")
		return
	}

	stats, err := drainer.Drain(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("drain failed")
		os.Exit(1)
	}

	zlog.Logger.Info().
		Int64("reclaimed", stats.Reclaimed).
		Int("fetched", stats.Fetched).
		Int64("completed", stats.Completed).
		Int64("failed", stats.Failed).
		Int64("skipped", stats.Skipped).
		Msg("drain finished")
}
