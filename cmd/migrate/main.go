package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"bookit/internal/handler/middleware"
	"bookit/internal/infra/db"
	"bookit/internal/pkg/config"
	"bookit/migrations"
)

func main() {
	withSeed := flag.Bool("seed", false, "also load the demo catalog and promo codes")
	flag.Parse()

	if err := run(*withSeed); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(withSeed bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := migrations.Apply(ctx, pool, withSeed); err != nil {
		return err
	}
	logger.Info("migrations complete", "seed", withSeed)
	return nil
}
